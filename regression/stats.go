package regression

// goodnessOfFit returns the chi-square of the residuals of y = m·x + b in
// units of 1/sMin², and the weighted coefficient of determination.
//
//	χ²·sMin² = Σ w_i·(y_i - b - m·x_i)²      w_i = (sMin/sigma_i)²
//	R²       = 1 - χ² / Σ w_i·(y_i - ȳ_w)²
//
// R² is a ratio, so the normalization cancels. It is 0 when the weighted total
// sum of squares is zero, as for constant y.
func goodnessOfFit(x, y, sigmaY []float64, sMin, b, m float64) (chi2Norm, r2 float64) {
	var sw, swy float64
	for i := range y {
		w := weight(sigmaY[i], sMin)
		sw += w
		swy += w * y[i]
	}
	ym := swy / sw

	var ssTot float64
	for i := range y {
		s := sMin / sigmaY[i]

		r := (y[i] - b - m*x[i]) * s
		chi2Norm += r * r

		d := (y[i] - ym) * s
		ssTot += d * d
	}

	if ssTot == 0 {
		return chi2Norm, 0
	}

	return chi2Norm, 1 - chi2Norm/ssTot
}
