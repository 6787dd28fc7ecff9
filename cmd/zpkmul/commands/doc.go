// Package commands defines the zpkmul CLI.
//
// Commands
//
//   - combine  Multiply a plant, a controller and an actuator model
//   - eval     Print magnitude and phase over a log-spaced frequency grid
//   - tf       Print the numerator and denominator polynomials of a model
//
// Every model argument uses the text form read by zpk.Parse.
package commands
