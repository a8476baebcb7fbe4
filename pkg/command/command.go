package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joripage/orderbook-sim/pkg/orderbook"
)

type Kind string

const (
	BUY    Kind = "BUY"
	SELL   Kind = "SELL"
	MODIFY Kind = "MODIFY"
	CANCEL Kind = "CANCEL"
	PRINT  Kind = "PRINT"
)

var arity = map[Kind]int{
	BUY:    5, // BUY tif price qty id
	SELL:   5,
	MODIFY: 5, // MODIFY id side price qty
	CANCEL: 2,
	PRINT:  1,
}

// Command is one parsed input line. Only the fields of its Kind are set.
type Command struct {
	Kind        Kind
	Side        orderbook.Side
	TimeInForce orderbook.TimeInForce
	Price       int64
	Qty         int64
	ID          string
}

// Parse tokenizes a whitespace separated command line. Range checks on price,
// quantity, side and time in force are left to the order book.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmptyLine
	}

	kind := Kind(fields[0])
	n, ok := arity[kind]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
	if len(fields) != n {
		return Command{}, fmt.Errorf("%w: %s takes %d fields, got %d", ErrMalformedCommand, kind, n, len(fields))
	}

	cmd := Command{Kind: kind}
	var err error
	switch kind {
	case BUY, SELL:
		cmd.Side = orderbook.Side(kind)
		cmd.TimeInForce = orderbook.TimeInForce(fields[1])
		if cmd.Price, err = parseInt("price", fields[2]); err != nil {
			return Command{}, err
		}
		if cmd.Qty, err = parseInt("qty", fields[3]); err != nil {
			return Command{}, err
		}
		cmd.ID = fields[4]
	case MODIFY:
		cmd.ID = fields[1]
		cmd.Side = orderbook.Side(fields[2])
		if cmd.Price, err = parseInt("price", fields[3]); err != nil {
			return Command{}, err
		}
		if cmd.Qty, err = parseInt("qty", fields[4]); err != nil {
			return Command{}, err
		}
	case CANCEL:
		cmd.ID = fields[1]
	}
	return cmd, nil
}

func parseInt(name, s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformedCommand, name, s)
	}
	return v, nil
}

func (c Command) String() string {
	switch c.Kind {
	case BUY, SELL:
		return fmt.Sprintf("%s %s %d %d %s", c.Kind, c.TimeInForce, c.Price, c.Qty, c.ID)
	case MODIFY:
		return fmt.Sprintf("%s %s %s %d %d", c.Kind, c.ID, c.Side, c.Price, c.Qty)
	case CANCEL:
		return fmt.Sprintf("%s %s", c.Kind, c.ID)
	}
	return string(c.Kind)
}
