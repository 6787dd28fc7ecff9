// Package zpk models linear time-invariant systems in zero-pole-gain form.
//
// A [Model] holds the roots of the numerator (zeros), the roots of the
// denominator (poles) and a scalar gain:
//
//	H(s) = k * (s - z1)(s - z2)... / ((s - p1)(s - p2)...)
//
// Models with a positive SampleTime are discrete-time and are evaluated on
// the unit circle instead of the imaginary axis.
//
// The product of rational functions in factored form is obtained by
// concatenating zero lists, concatenating pole lists and multiplying gains.
// [Combine] does this for the usual plant, controller and actuator chain;
// [Series] does it for any number of models. Neither cancels or deduplicates
// roots: a root present in two inputs appears twice in the result.
//
// Malformed inputs (nil models, non-finite gains or roots, mismatched sample
// times) are reported as [*InvalidInputError] values that match
// [ErrInvalidInput] with [errors.Is]. No function in this package mutates
// its arguments, and all of them are safe for concurrent use.
package zpk
