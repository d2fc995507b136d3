// Package shell implements the line-oriented interactive command shell.
//
// A Loop reads one line at a time, Parse turns it into a Command variant,
// and a Dispatcher applies that command through the EventService. Output
// is rendered by a Presenter; failures are reported on the error stream and
// never end the loop.
//
// Commands:
//
//	new <title> <description>          create an event
//	list | ls                          list events in insertion order
//	remove | rm <index>                remove an event after confirmation
//	occur | oc <index> <title> <description> [key=value ...]
//	                                   record an occurance on an event
//	help | h | ?                       show commands
//	exit | quit                        leave the shell
//
// Fields are separated by runs of whitespace; a double-quoted run forms a
// single field. Unrecognized commands and empty lines are ignored.
package shell
