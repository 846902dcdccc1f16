// Package input provides non-blocking line sources for the pointview loop.
//
// Two implementations satisfy pointview.InputChannel:
//
//   - Poller checks descriptor readiness with poll(2) and reads at most what
//     is already available, assembling partial lines itself. It needs no
//     goroutine and is used for stdin and files on unix systems.
//   - Reader wraps any io.Reader. A background goroutine reads lines and
//     hands them over a buffered channel; Ready peeks the channel.
//
// Open picks the best one for an *os.File.
package input
