package pade

import "errors"

var (
	// ErrBadOrder is returned when either approximant order is negative.
	ErrBadOrder = errors.New("pade: approximant orders must be non-negative")

	// ErrInsufficientCoeffs is returned when fewer than l+m+1 series
	// coefficients are available.
	ErrInsufficientCoeffs = errors.New("pade: not enough series coefficients")

	// ErrSingular is returned when the denominator system has no unique
	// solution for the requested orders.
	ErrSingular = errors.New("pade: singular coefficient system")

	// ErrZeroDenominator is returned by Eval at a pole of Q.
	ErrZeroDenominator = errors.New("pade: denominator vanishes at evaluation point")
)
