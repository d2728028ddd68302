// Package cel searches a list with a CEL (Common Expression Language) predicate.
//
// The predicate sees two integer variables: value, the node's value, and
// position, its zero-based index from the head. For example
// "value > 3 && position % 2 == 0".
package cel

import (
	"fmt"
	"reflect"

	"github.com/google/cel-go/cel"
	"github.com/sharedcode/slist"
)

// Evaluator struct contains the CEL expression & the cel program used to evaluate it against a node.
type Evaluator struct {
	Name       string
	Expression string
	program    cel.Program
}

// Chain is anything that exposes the head of a node chain, e.g. *slist.LinkedList.
type Chain interface {
	Head() *slist.Node
}

// NewEvaluator compiles expression, which must produce a bool, into an Evaluator.
func NewEvaluator(name string, expression string) (*Evaluator, error) {
	if name == "" {
		return nil, fmt.Errorf("name can't be empty string")
	}
	if expression == "" {
		return nil, fmt.Errorf("expression can't be empty string")
	}

	env, err := cel.NewEnv(
		cel.Variable("value", cel.IntType),
		cel.Variable("position", cel.IntType),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating CEL environment: %v", err)
	}

	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("error compiling CEL expression: %v", issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("expression %q must evaluate to bool, got %v", expression, ast.OutputType())
	}
	p, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("error creating Program: %v", err)
	}
	return &Evaluator{
		Name:       name,
		Expression: expression,
		program:    p,
	}, nil
}

// Evaluate runs the predicate for a node value found at position.
func (e *Evaluator) Evaluate(value int, position int) (bool, error) {
	out, _, err := e.program.Eval(map[string]any{
		"value":    int64(value),
		"position": int64(position),
	})
	if err != nil {
		return false, fmt.Errorf("error evaluating CEL expression: %v", err)
	}
	nv, err := out.ConvertToNative(reflect.TypeOf(false))
	if err != nil {
		return false, fmt.Errorf("error ConvertToNative, got err: %v", err)
	}
	if v, ok := nv.(bool); !ok {
		return false, fmt.Errorf("error converting to bool, nv: %v", nv)
	} else {
		return v, nil
	}
}

// Find walks the chain from its head and returns the first node the evaluator accepts
// together with its position, or nil and -1 when no node matches.
// The chain is read through Next links only and is not modified.
func Find(chain Chain, e *Evaluator) (*slist.Node, int, error) {
	if e == nil {
		return nil, -1, slist.Error{
			Code: slist.InvalidArgument,
			Err:  fmt.Errorf("%w: evaluator can't be nil", slist.ErrInvalidArgument),
		}
	}
	position := 0
	for current := chain.Head(); current != nil; current = current.Next() {
		ok, err := e.Evaluate(current.Value(), position)
		if err != nil {
			return nil, -1, err
		}
		if ok {
			return current, position, nil
		}
		position++
	}
	return nil, -1, nil
}
