/*
Package invocation defines the core domain entity for a runner invocation:
the program and argument vector a target resolves to.
*/
package invocation

import "strings"

// Invocation is a fully resolved command line, ready to be handed to a
// process executor. Args never includes the program itself.
type Invocation struct {
	Program string
	Args    []string
}

// String renders the invocation the way it would be typed in a shell,
// quoting arguments that contain whitespace. Display only; execution always
// uses Program and Args directly, never this string.
func (i Invocation) String() string {
	var b strings.Builder
	b.WriteString(i.Program)
	for _, arg := range i.Args {
		b.WriteByte(' ')
		if strings.ContainsAny(arg, " \t") {
			b.WriteByte('"')
			b.WriteString(arg)
			b.WriteByte('"')
		} else {
			b.WriteString(arg)
		}
	}
	return b.String()
}
