package math

import "math"

// eulerTol is the numerical tolerance used to keep the Euler-angle
// decomposition defined at gimbal-lock configurations.
const eulerTol = 1e-16

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func rotateX(p Vec3, alpha float64) Vec3 {
	c, s := math.Cos(alpha), math.Sin(alpha)
	return Vec3{X: p.X, Y: c*p.Y - s*p.Z, Z: s*p.Y + c*p.Z}
}

func rotateY(p Vec3, beta float64) Vec3 {
	c, s := math.Cos(beta), math.Sin(beta)
	return Vec3{X: c*p.X + s*p.Z, Y: p.Y, Z: -s*p.X + c*p.Z}
}

func rotateZ(p Vec3, gamma float64) Vec3 {
	c, s := math.Cos(gamma), math.Sin(gamma)
	return Vec3{X: c*p.X - s*p.Y, Y: s*p.X + c*p.Y, Z: p.Z}
}

// RotateBasis applies the composed rotation Rz(gamma)·Ry(beta)·Rx(alpha)
// to the point p. Angles are in radians and the matrices are the standard
// right-handed rotations about x, y and z.
func RotateBasis(p Vec3, alpha, beta, gamma float64) Vec3 {
	return rotateZ(rotateY(rotateX(p, alpha), beta), gamma)
}

// RotateZYZ applies the composed rotation Rz(alpha)·Ry(beta)·Rz(gamma) to
// the point p. This is the composition that reproduces an axis-angle
// rotation from the angles returned by EulerAngles.
func RotateZYZ(p Vec3, alpha, beta, gamma float64) Vec3 {
	return rotateZ(rotateY(rotateZ(p, gamma), beta), alpha)
}

// RotateAxisAngle rotates p by theta radians about the given axis using
// Rodrigues' rotation formula. The axis need not be unit length.
func RotateAxisAngle(p, axis Vec3, theta float64) (Vec3, error) {
	k, err := axis.Normalize()
	if err != nil {
		return Vec3{}, err
	}
	c, s := math.Cos(theta), math.Sin(theta)
	return p.Multiply(c).
		Add(k.Cross(p).Multiply(s)).
		Add(k.Multiply(k.Dot(p) * (1 - c))), nil
}

// poleAlignment tags the three branches of the Euler-angle decomposition.
// The rotation matrix element R22 determines which branch applies.
type poleAlignment int

const (
	southAligned poleAlignment = iota // R22 near -1
	northAligned                      // R22 near +1
	offPole                           // general case
)

func classifyPole(r22 float64) poleAlignment {
	switch {
	case r22 > -1-eulerTol && r22 < -1+eulerTol:
		return southAligned
	case r22 > 1-eulerTol && r22 < 1+eulerTol:
		return northAligned
	default:
		return offPole
	}
}

// EulerAngles decomposes a rotation by theta radians about axis into z-y-z
// Euler angles (alpha, beta, gamma): RotateZYZ with those angles reproduces
// RotateAxisAngle(p, axis, theta). Degenerate inputs (zero angle, axis on
// the z pole) are nudged by a tiny tolerance so every branch stays defined.
func EulerAngles(axis Vec3, theta float64) (alpha, beta, gamma float64) {
	ux, uy, uz := axis.X, axis.Y, axis.Z
	if theta == 0 {
		theta = eulerTol
	}
	if ux == 0 && uy == 0 {
		ux = eulerTol
		uy = eulerTol
	}

	c, s := math.Cos(theta), math.Sin(theta)
	r01 := ux*uy*(1-c) - uz*s
	r02 := ux*uz*(1-c) + uy*s
	r11 := c + uy*uy*(1-c)
	r12 := uy*uz*(1-c) - ux*s
	r20 := uz*ux*(1-c) - uy*s
	r21 := uz*uy*(1-c) + ux*s
	r22 := c + uz*uz*(1-c)

	var cosA, sinA, cosB, sinB, cosG, sinG float64
	switch classifyPole(r22) {
	case southAligned:
		cosB, sinB = -1, 0
		cosG, sinG = r11, r01
		cosA, sinA = 1, 0
	case northAligned:
		cosB, sinB = 1, 0
		cosG, sinG = r11, -r01
		cosA, sinA = 1, 0
	default:
		cosB = r22
		sinB = math.Sqrt(1 - cosB*cosB)
		norm1 := math.Hypot(r20, r21)
		norm2 := math.Hypot(r02, r12)
		cosG, sinG = -r20/norm1, r21/norm1
		cosA, sinA = r02/norm2, r12/norm2
	}

	alpha = math.Atan2(sinA, cosA)
	beta = math.Atan2(sinB, cosB)
	gamma = math.Atan2(sinG, cosG)
	return alpha, beta, gamma
}

// Haversine returns the great-circle angular distance in degrees between
// two points given in geographic degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1, lon1 = Radians(lat1), Radians(lon1)
	lat2, lon2 = Radians(lat2), Radians(lon2)
	dLat := lat2 - lat1
	dLon := lon2 - lon1
	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	return Degrees(2 * math.Asin(math.Sqrt(a)))
}
