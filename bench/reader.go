package bench

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/go-stp/stp/circuit"
)

func benchErrorf(op string, err error) error {
	return fmt.Errorf("bench: %s: %w", op, err)
}

// Read parses a BENCH-format netlist from r and builds a circuit.Circuit
// via CreatePI/CreatePO/CreateNode, in the textual order the lines
// appear. Gate lines may reference inputs not yet declared (the usual
// circuit forward-reference tolerance).
func Read(r io.Reader) (*circuit.Circuit, error) {
	c := circuit.NewCircuit()
	s := bufio.NewScanner(r)

	for s.Scan() {
		line := stripComment(s.Text())
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := readLine(c, line); err != nil {
			return nil, benchErrorf("Read", err)
		}
	}
	if err := s.Err(); err != nil {
		return nil, benchErrorf("Read", err)
	}

	return c, nil
}

// stripComment truncates line at its first '#'.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}

	return line
}

func readLine(c *circuit.Circuit, line string) error {
	switch {
	case strings.HasPrefix(line, "INPUT("):
		name, err := parseParenName(line, "INPUT(")
		if err != nil {
			return err
		}
		_, err = c.CreatePI(name)

		return err

	case strings.HasPrefix(line, "OUTPUT("):
		name, err := parseParenName(line, "OUTPUT(")
		if err != nil {
			return err
		}
		_, err = c.CreatePO(name)

		return err

	default:
		return readLUTLine(c, line)
	}
}

// parseParenName extracts name from a "KEYWORD(name)" line given its
// known keyword-plus-open-paren prefix.
func parseParenName(line, prefix string) (string, error) {
	if !strings.HasSuffix(line, ")") {
		return "", ErrSyntax
	}
	name := strings.TrimSpace(line[len(prefix) : len(line)-1])
	if name == "" {
		return "", ErrSyntax
	}

	return name, nil
}

// readLUTLine parses "<name> = LUT <0xHEX> ( <in1>, ..., <ink> )" and
// defines the gate on c.
func readLUTLine(c *circuit.Circuit, line string) error {
	name, rhs, ok := strings.Cut(line, "=")
	if !ok {
		return ErrSyntax
	}
	name = strings.TrimSpace(name)
	rhs = strings.TrimSpace(rhs)

	if !strings.HasPrefix(rhs, "LUT") {
		return ErrSyntax
	}
	rhs = strings.TrimSpace(rhs[len("LUT"):])

	hexPart, rest, ok := strings.Cut(rhs, "(")
	if !ok {
		return ErrMalformedLUT
	}
	hexPart = strings.TrimSpace(hexPart)
	hexPart = strings.TrimPrefix(hexPart, "0x")
	hexPart = strings.TrimPrefix(hexPart, "0X")

	rest = strings.TrimSpace(rest)
	if !strings.HasSuffix(rest, ")") {
		return ErrMalformedLUT
	}
	rest = rest[:len(rest)-1]

	var inputs []string
	for _, tok := range strings.Split(rest, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return ErrMalformedLUT
		}
		inputs = append(inputs, tok)
	}

	if name == "" || hexPart == "" {
		return ErrMalformedLUT
	}

	_, err := c.CreateNode(name, inputs, hexPart)

	return err
}
