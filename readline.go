package sweetrt

import "github.com/sweet-lang/sweetrt/internal/debug"

// readLineStartCap is the initial line buffer capacity; the buffer doubles
// whenever it fills, each generation allocated fresh from the arena.
const readLineStartCap = 64

// ReadLine reads one line from standard input into arena storage, up to but
// not including the line terminator. ok is false only when end-of-stream is
// reached before any byte is read; a lone terminator is a successful empty
// line, and an unterminated final line is returned as a complete read. Read
// errors are treated as end-of-stream.
func (r *Runtime) ReadLine() (line Str, ok bool) {
	capacity := readLineStartCap
	buf := r.arena.AllocBytes(capacity)
	length := 0

	for {
		ch, err := r.stdin.ReadByte()
		if err != nil {
			if length == 0 {
				debug.Logf("stdin_getline: end of stream")
				return nil, false
			}
			break
		}
		if ch == '\n' {
			break
		}
		if length+1 >= capacity {
			capacity *= 2
			next := r.arena.AllocBytes(capacity)
			copy(next, buf[:length])
			buf = next
		}
		buf[length] = ch
		length++
	}

	buf[length] = 0
	debug.Logf("stdin_getline: read %q", buf[:length])
	return Str(buf[:length+1]), true
}
