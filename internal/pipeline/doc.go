// Package pipeline runs the output stages of a report card in sequence.
//
// A report card goes through: console summary, text file, HTML file (which
// then asks the opener to show it), and any extra formats that are enabled.
// Each stage is a Step. The pipeline gives every step the same logging and
// cancellation handling, and with WithContinueOnError a failed step does
// not stop the ones after it.
package pipeline
