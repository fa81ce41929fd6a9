package special

import (
	"math"

	"github.com/rollingthunder/specfun/numeric"
)

// Rational approximations from MacLeod, "Chebyshev expansions for the
// sine and cosine integrals" (Numer. Algorithms 12, 1996).

const (
	// rationalLimit separates the small argument approximations of Si and Ci
	// from the auxiliary function forms.
	rationalLimit = 6.0
	// ciSplit separates the two Ci approximations around its zeros ciR0, ciR1
	ciSplit = 3.0
	// auxiliarySplit separates the two asymptotic F and G approximations
	auxiliarySplit = 12.0

	ciR0 = 0.616505485620716233797110404100
	ciR1 = 3.384180422851186426397851146402
)

// Si is the sine integral (DLMF 6.2.9). It is odd: arguments with a
// negative real part are reflected.
func Si[T numeric.Scalar](x T) T {
	if numeric.Real(x) < 0 {
		return -Si(-x)
	}

	halfPi := numeric.FromFloat[T](math.Pi / 2)
	norm := numeric.Abs(x)
	switch {
	case norm*norm < 18*epsilon:
		return x
	case norm > 2/epsilon:
		return halfPi
	case norm*norm > 6/epsilon:
		return halfPi - numeric.Cos(x)/x - numeric.Sin(x)/(x*x)
	case norm < rationalLimit:
		r, _ := numeric.PolynomialRatio(siNumerator[:], siDenominator[:], x*x)
		return x * r
	}
	return halfPi - F(x)*numeric.Cos(x) - G(x)*numeric.Sin(x)
}

// Ci is the cosine integral (DLMF 6.2.11). Real arguments must be positive;
// pass a complex128 for the principal branch elsewhere.
func Ci[T numeric.Scalar](x T) T {
	norm := numeric.Abs(x)
	switch {
	case norm < 2*math.Sqrt(epsilon):
		return numeric.FromFloat[T](EulerGamma) + numeric.Log(x)
	case norm > math.Pi/epsilon:
		return 0
	case norm < ciSplit:
		return ciNearZero(x, ciR0, ciNumeratorLow[:], ciDenominatorLow[:])
	case norm < rationalLimit:
		return ciNearZero(x, ciR1, ciNumeratorHigh[:], ciDenominatorHigh[:])
	}
	return F(x)*numeric.Sin(x) - G(x)*numeric.Cos(x)
}

// ciNearZero expands Ci around its zero r, which keeps the relative error
// bounded there.
func ciNearZero[T numeric.Scalar](x T, r float64, numerator, denominator []float64) T {
	root := numeric.FromFloat[T](r)
	ratio, _ := numeric.PolynomialRatio(numerator, denominator, x*x)
	return numeric.Log(x/root) + (x*x-root*root)*ratio
}

// Cin is the entire cosine integral (DLMF 6.2.12). It is even.
func Cin[T numeric.Scalar](x T) T {
	if numeric.Real(x) < 0 {
		x = -x
	}
	return -Ci(x) + numeric.Log(x) + numeric.FromFloat[T](EulerGamma)
}

// F is the auxiliary function f of the trigonometric integrals
// (DLMF 6.2.17). Real arguments must be positive.
func F[T numeric.Scalar](x T) T {
	norm := numeric.Abs(x)
	if norm < rationalLimit {
		return Ci(x)*numeric.Sin(x) - (Si(x)-numeric.FromFloat[T](math.Pi/2))*numeric.Cos(x)
	}

	inverseSquare := 1 / (x * x)
	if norm <= auxiliarySplit {
		r, _ := numeric.PolynomialRatio(fNumeratorSmall[:], fDenominatorSmall[:], inverseSquare)
		return r / x
	}
	r, _ := numeric.PolynomialRatio(fNumeratorBig[:], fDenominatorBig[:], inverseSquare)
	return (1 - r*inverseSquare) / x
}

// G is the auxiliary function g of the trigonometric integrals
// (DLMF 6.2.18). Real arguments must be positive.
func G[T numeric.Scalar](x T) T {
	norm := numeric.Abs(x)
	if norm < rationalLimit {
		return -Ci(x)*numeric.Cos(x) - (Si(x)-numeric.FromFloat[T](math.Pi/2))*numeric.Sin(x)
	}

	inverseSquare := 1 / (x * x)
	if norm <= auxiliarySplit {
		r, _ := numeric.PolynomialRatio(gNumeratorSmall[:], gDenominatorSmall[:], inverseSquare)
		return r * inverseSquare
	}
	r, _ := numeric.PolynomialRatio(gNumeratorBig[:], gDenominatorBig[:], inverseSquare)
	return (1 - r*inverseSquare) * inverseSquare
}

var siNumerator = [...]float64{
	1.00000000000000000000e0,
	-0.44663998931312457298e-1,
	0.11209146443112369449e-2,
	-0.13276124407928422367e-4,
	0.85118014179823463879e-7,
	-0.29989314303147656479e-9,
	0.55401971660186204711e-12,
	-0.42406353433133212926e-15,
}

var siDenominator = [...]float64{
	1.00000000000000000000e0,
	0.10891556624243098264e-1,
	0.59334456769186835896e-4,
	0.21231112954641805908e-6,
	0.54747121846510390750e-9,
	0.10378561511331814674e-11,
	0.13754880327250272679e-14,
	0.10223981202236205703e-17,
}

// |x| < 3
var ciNumeratorLow = [...]float64{
	-0.24607411378767540707e0,
	0.72113492241301534559e-2,
	-0.11867127836204767056e-3,
	0.90542655466969866243e-6,
	-0.34322242412444409037e-8,
	0.51950683460656886834e-11,
}

var ciDenominatorLow = [...]float64{
	1.00000000000000000000e0,
	0.12670095552700637845e-1,
	0.78168450570724148921e-4,
	0.29959200177005821677e-6,
	0.73191677761328838216e-9,
	0.94351174530907529061e-12,
}

// 3 <= |x| < 6
var ciNumeratorHigh = [...]float64{
	-0.15684781827145408780e0,
	0.66253165609605468916e-2,
	-0.12822297297864512864e-3,
	0.12360964097729408891e-5,
	-0.66450975112876224532e-8,
	0.20326936466803159446e-10,
	-0.33590883135343844613e-13,
	0.23686934961435015119e-16,
}

var ciDenominatorHigh = [...]float64{
	1.00000000000000000000e0,
	0.96166044388828741188e-2,
	0.45257514591257035006e-4,
	0.13544922659627723233e-6,
	0.27715365686570002081e-9,
	0.37718676301688932926e-12,
	0.27706844497155995398e-15,
	0,
}

// 6 <= |x| <= 12, in powers of 1/x²
var fNumeratorSmall = [...]float64{
	0.99999999962173909991e0,
	0.36451060338631902917e3,
	0.44218548041288440874e5,
	0.22467569405961151887e7,
	0.49315316723035561922e8,
	0.43186795279670283193e9,
	0.11847992519956804350e10,
	0.45573267593795103181e9,
}

var fDenominatorSmall = [...]float64{
	1.0,
	0.36651060273229347594e3,
	0.44927569814970692777e5,
	0.23285354882204041700e7,
	0.53117852017228262911e8,
	0.50335310667241870372e9,
	0.16575285015623175410e10,
	0.11746532837038341076e10,
}

var gNumeratorSmall = [...]float64{
	0.99999999920484901956e0,
	0.51385504875307321394e3,
	0.92293483452013810811e5,
	0.74071341863359841727e7,
	0.28142356162841356551e9,
	0.49280890357734623984e10,
	0.35524762685554302472e11,
	0.79194271662085049376e11,
	0.17942522624413898907e11,
}

var gDenominatorSmall = [...]float64{
	1.0,
	0.51985504708814870209e3,
	0.95292615508125947321e5,
	0.79215459679762667578e7,
	0.31977567790733781460e9,
	0.62273134702439012114e10,
	0.54570971054996441467e11,
	0.18241750166645704670e12,
	0.15407148148861454434e12,
}

// |x| > 12
var fNumeratorBig = [...]float64{
	0.19999999999999978257e1,
	0.22206119380434958727e4,
	0.84749007623988236808e6,
	0.13959267954823943232e9,
	0.10197205463267975592e11,
	0.30229865264524075951e12,
	0.27504053804288471142e13,
	0.21818989704686874983e13,
}

var fDenominatorBig = [...]float64{
	1.0,
	0.11223059690217167788e4,
	0.43685270974851313242e6,
	0.74654702140658116258e8,
	0.58580034751805687471e10,
	0.20157980379272098841e12,
	0.26229141857684496445e13,
	0.87852907334918467516e13,
}

var gNumeratorBig = [...]float64{
	0.59999999999999993089e1,
	0.96527746044997139158e4,
	0.56077626996568834185e7,
	0.15022667718927317198e10,
	0.19644271064733088465e12,
	0.12191368281163225043e14,
	0.31924389898645609533e15,
	0.25876053010027485934e16,
	0.12754978896268878403e16,
}

var gDenominatorBig = [...]float64{
	1.0,
	0.16287957674166143196e4,
	0.96636303195787870963e6,
	0.26839734750950667021e9,
	0.37388510548029219241e11,
	0.26028585666152144496e13,
	0.85134283716950697226e14,
	0.11304079361627952930e16,
	0.42519841479489798424e16,
}
