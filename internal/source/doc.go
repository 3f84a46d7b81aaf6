// Package source feeds external log data into the pane.
//
// Follower tails a log file: it watches the file's directory with fsnotify,
// reads newly appended bytes on every write, splits them into lines, infers
// a semantic level from the line text, and hands each line to an emit
// callback. Truncation (log rotation) resets the read offset to the start
// of the new file.
package source
