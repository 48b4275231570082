package equation

// Examples are valid equations shown to users as a guide.
var Examples = []string{
	"2x + 3 = 7",
	"-x - 5 = 10",
	"3x = 9",
	"x - 4 = 0",
	"5x + 2 = -3",
}
