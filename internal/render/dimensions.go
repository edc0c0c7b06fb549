package render

// Hand and hub proportions in logical pixels, shared by every variant and
// multiplied by the display scale factor at draw time.
const (
	hourHandLength   = 120
	hourHandWidth    = 8
	minuteHandLength = 180
	minuteHandWidth  = 6
	secondHandLength = 200
	secondHandWidth  = 3

	hubRadius = 12

	// ringWidth is the radial width of the face outline ring.
	ringWidth = 10

	faceSegments2D = 720 // smooth high-density 2D ring
	faceSegments3D = 60  // coarser lit 3D ring
	hubSegments2D  = 24
	hubSegments3D  = 20
)
