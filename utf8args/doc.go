// Package utf8args yields the process arguments as UTF-8 on every
// platform. Console programs on Windows receive an argv that has been
// through the ANSI code page, which garbles anything the page cannot
// represent; Args goes back to the original UTF-16 command line instead.
// POSIX argv is byte-transparent and passes through untouched.
package utf8args
