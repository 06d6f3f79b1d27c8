package core

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/zooyer/godxf/dxferr"
)

// Reader is the restartable, one-pair-lookahead cursor over a DXF pair
// stream that every higher decoder (header, tables, blocks, entities,
// objects) consumes, per spec.md §4.2. It never rewinds; grammar
// decisions are made purely on Peek.
type Reader struct {
	lines  *bufio.Reader
	offset int64

	cur    CodePair
	curSet bool

	peeked    CodePair
	peekSet   bool
	peekErr   error
	sawPeek   bool // distinguishes "no peek attempted yet" from "peek returned EOF"
	err       error
}

// NewReader wraps decoded DXF text (see DecodeText) in a pair cursor.
func NewReader(text string) *Reader {
	return &Reader{lines: bufio.NewReader(strings.NewReader(text))}
}

// readLine returns the next physical line with its terminator stripped,
// tolerating both CRLF and bare LF. An empty read at true EOF is reported
// as io.EOF; a blank line before the end is returned as "".
func (r *Reader) readLine() (string, error) {
	line, err := r.lines.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	r.offset += int64(len(line))
	line = strings.TrimRight(line, "\r\n")
	if err == io.EOF && line == "" {
		return "", io.EOF
	}
	return line, nil
}

// readRawPair reads one physical pair from the wire, in either the
// classic two-line framing or the compact code<TAB>value framing
// (accepted on read, never emitted, per spec.md §4.1). It does not skip
// comments; callers that want comment-skipping use next().
func (r *Reader) readRawPair() (CodePair, error) {
	startOffset := r.offset
	line1, err := r.readLine()
	if err != nil {
		return CodePair{}, io.EOF
	}

	if idx := strings.IndexByte(line1, '\t'); idx >= 0 {
		codeStr, value := line1[:idx], line1[idx+1:]
		code, cerr := strconv.Atoi(strings.TrimSpace(codeStr))
		if cerr != nil {
			return CodePair{}, dxferr.Newf(dxferr.BadPair, "non-integer group code %q", codeStr).WithPair(0, line1, startOffset)
		}
		return CodePair{Code: code, Value: value, Offset: startOffset}, nil
	}

	codeStr := strings.TrimSpace(line1)
	code, cerr := strconv.Atoi(codeStr)
	if cerr != nil {
		return CodePair{}, dxferr.Newf(dxferr.BadPair, "non-integer group code %q", codeStr).WithPair(0, line1, startOffset)
	}

	value, err := r.readLine()
	if err != nil {
		return CodePair{}, dxferr.Newf(dxferr.UnexpectedEof, "stream ended after group code %d with no value", code).WithPair(code, "", startOffset)
	}

	return CodePair{Code: code, Value: value, Offset: startOffset}, nil
}

// next reads the next non-comment pair, skipping 999 comments silently.
func (r *Reader) next() (CodePair, error) {
	for {
		pair, err := r.readRawPair()
		if err != nil {
			return CodePair{}, err
		}
		if pair.IsComment() {
			continue
		}
		return pair, nil
	}
}

// Peek returns the next pair without consuming it. Calling Peek
// repeatedly without an intervening Advance returns the same pair.
func (r *Reader) Peek() (CodePair, error) {
	if !r.peekSet && r.peekErr == nil {
		r.peeked, r.peekErr = r.next()
		r.peekSet = r.peekErr == nil
	}
	return r.peeked, r.peekErr
}

// Advance consumes and returns the pair last returned by Peek (fetching
// it first if Peek was not yet called), making the subsequent pair the
// new lookahead.
func (r *Reader) Advance() (CodePair, error) {
	pair, err := r.Peek()
	r.peekSet = false
	r.peekErr = nil
	if err != nil {
		return CodePair{}, err
	}
	r.cur = pair
	r.curSet = true
	return pair, nil
}

// ItemsRemain reports whether another pair is available.
func (r *Reader) ItemsRemain() bool {
	_, err := r.Peek()
	return err == nil
}

// Current returns the pair last consumed by Advance.
func (r *Reader) Current() (CodePair, bool) {
	return r.cur, r.curSet
}

// Offset returns the current stream offset, used for error reporting.
func (r *Reader) Offset() int64 {
	return r.offset
}

// SkipTo advances the reader until a control pair (code 0) whose value
// equals one of the given names (case-insensitive) is the next pair,
// or the stream ends. The matching pair is not consumed: it is left as
// the lookahead that Peek returns. It is used to drain unknown sections/records per
// the forward-compatibility policy in spec.md §7.
func (r *Reader) SkipTo(names ...string) error {
	for {
		pair, err := r.Peek()
		if err != nil {
			return err
		}
		if pair.IsControl() {
			for _, name := range names {
				if strings.EqualFold(pair.Value, name) {
					return nil
				}
			}
		}
		if _, err := r.Advance(); err != nil {
			return err
		}
	}
}
