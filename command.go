package main

import (
	"encoding/json"
	"fmt"

	"github.com/MixinNetwork/rational/common"
	"github.com/MixinNetwork/rational/rpc"
	"github.com/urfave/cli/v2"
)

func evalCmd(c *cli.Context) error {
	out, err := evaluate(c.Args().Slice())
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func evaluate(args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("invalid arguments %v", args)
	}
	op, operands := args[0], args[1:]
	switch op {
	case "neg":
		if len(operands) != 1 {
			return "", fmt.Errorf("neg takes one operand %v", operands)
		}
	case "add", "sub", "mul", "div", "cmp", "equal":
		if len(operands) != 2 {
			return "", fmt.Errorf("%s takes two operands %v", op, operands)
		}
	default:
		return "", fmt.Errorf("unknown operation %s", op)
	}

	rs := make([]common.Rational, len(operands))
	for i, s := range operands {
		r, err := common.ParseRational(s)
		if err != nil {
			return "", err
		}
		rs[i] = r
	}

	switch op {
	case "neg":
		return rs[0].Neg().String(), nil
	case "add":
		return rs[0].Add(rs[1]).String(), nil
	case "sub":
		return rs[0].Sub(rs[1]).String(), nil
	case "mul":
		return rs[0].Mul(rs[1]).String(), nil
	case "div":
		v, err := rs[0].Div(rs[1])
		if err != nil {
			return "", err
		}
		return v.String(), nil
	case "cmp":
		return fmt.Sprint(rs[0].Cmp(rs[1])), nil
	default:
		return fmt.Sprint(rs[0].Equal(rs[1])), nil
	}
}

func canonicalCmd(c *cli.Context) error {
	r, err := common.ParseRational(c.Args().First())
	if err != nil {
		return err
	}
	fmt.Println(r.String())
	return nil
}

func decimalCmd(c *cli.Context) error {
	r, err := common.ParseRational(c.Args().First())
	if err != nil {
		return err
	}
	places := c.Int("places")
	if places < 0 {
		return fmt.Errorf("invalid decimal places %d", places)
	}
	fmt.Println(r.StringFixed(int32(places)))
	return nil
}

func fromDecimalCmd(c *cli.Context) error {
	r, err := common.NewRationalFromDecimal(c.Args().First())
	if err != nil {
		return err
	}
	fmt.Println(r.String())
	return nil
}

func rpcCmd(c *cli.Context) error {
	args := c.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("no method")
	}
	params := make([]interface{}, len(args)-1)
	for i, a := range args[1:] {
		params[i] = a
	}
	return printRPC(c, args[0], params)
}

func setCmd(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("invalid arguments %v", c.Args().Slice())
	}
	return printRPC(c, "setrational", []interface{}{c.Args().Get(0), c.Args().Get(1)})
}

func getCmd(c *cli.Context) error {
	return printRPC(c, "getrational", []interface{}{c.Args().First()})
}

func listCmd(c *cli.Context) error {
	return printRPC(c, "listrationals", []interface{}{})
}

func printRPC(c *cli.Context, method string, params []interface{}) error {
	data, err := rpc.CallRationalRPC(c.String("node"), method, params)
	if err != nil {
		return err
	}
	var v interface{}
	err = json.Unmarshal(data, &v)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
