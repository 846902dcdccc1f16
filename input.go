package pointview

// InputChannel is a line-oriented, non-blocking source of records.
//
// Ready never blocks. ReadLine must only be called after Ready returned true;
// it then returns the next line including its newline, or eof == true once
// the source is exhausted. After Close, Ready returns false permanently.
//
// Package input provides implementations for files, pipes and arbitrary
// readers.
type InputChannel interface {
	Ready() bool
	ReadLine() (line string, eof bool)
	Close() error
}
