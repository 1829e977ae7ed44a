package evaluator

import (
	"strconv"
	"strings"

	"github.com/nettle-lang/nettle/internal/object"
)

// Builtins is the fixed table of host-provided functions, consulted by
// evalIdentifier when a name isn't bound in any enclosing Environment.
// Every entry except the variadic `puts` checks its argument count,
// and entries that need a particular argument kind check that too.
var Builtins = map[string]*object.Builtin{
	"len":     {Fn: builtinLen},
	"first":   {Fn: builtinFirst},
	"last":    {Fn: builtinLast},
	"rest":    {Fn: builtinRest},
	"push":    {Fn: builtinPush},
	"puts":    {Fn: builtinPuts},
	"exit":    {Fn: builtinExit},
	"join":    {Fn: builtinJoin},
	"split":   {Fn: builtinSplit},
	"keys":    {Fn: builtinKeys},
	"values":  {Fn: builtinValues},
	"type":    {Fn: builtinType},
	"str":     {Fn: builtinStr},
	"reverse": {Fn: builtinReverse},
	"int":     {Fn: builtinInt},
}

func wrongArgCount(got int, want string) *object.Error {
	return newError("wrong number of arguments. got=%d, want=%s", got, want)
}

func argTypeError(nth, name, want string, got object.Type) *object.Error {
	return newError("%s argument to `%s` must be %s, got %s", nth, name, want, got)
}

// singleArgTypeError matches simian/objects/builtins.py's wording for
// builtins that only ever take one argument: no "nth" prefix, since
// there's nothing to disambiguate.
func singleArgTypeError(name, want string, got object.Type) *object.Error {
	return newError("argument to `%s` must be %s, got %s", name, want, got)
}

func builtinLen(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount(len(args), "1")
	}
	switch arg := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int64(len(arg.Value))}
	case *object.Array:
		return &object.Integer{Value: int64(len(arg.Elements))}
	default:
		return newError("argument to `len` not supported, got %s", args[0].Type())
	}
}

func builtinFirst(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount(len(args), "1")
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return singleArgTypeError("first", "ARRAY", args[0].Type())
	}
	if len(arr.Elements) > 0 {
		return arr.Elements[0]
	}
	return object.NULL
}

func builtinLast(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount(len(args), "1")
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return singleArgTypeError("last", "ARRAY", args[0].Type())
	}
	if length := len(arr.Elements); length > 0 {
		return arr.Elements[length-1]
	}
	return object.NULL
}

func builtinRest(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount(len(args), "1")
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return singleArgTypeError("rest", "ARRAY", args[0].Type())
	}
	length := len(arr.Elements)
	if length > 0 {
		newElements := make([]object.Object, length-1)
		copy(newElements, arr.Elements[1:length])
		return &object.Array{Elements: newElements}
	}
	return &object.Array{Elements: []object.Object{}}
}

func builtinPush(args ...object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgCount(len(args), "2")
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return argTypeError("first", "push", "ARRAY", args[0].Type())
	}
	length := len(arr.Elements)
	newElements := make([]object.Object, length+1)
	copy(newElements, arr.Elements)
	newElements[length] = args[1]
	return &object.Array{Elements: newElements}
}

func builtinPuts(args ...object.Object) object.Object {
	for _, arg := range args {
		stdoutWriter(arg.Inspect())
	}
	return object.NULL
}

func builtinExit(args ...object.Object) object.Object {
	if len(args) > 1 {
		return wrongArgCount(len(args), "0 or 1")
	}
	code := 0
	if len(args) == 1 {
		intArg, ok := args[0].(*object.Integer)
		if !ok {
			return singleArgTypeError("exit", "INTEGER", args[0].Type())
		}
		code = int(intArg.Value)
	}
	exitFunc(code)
	return object.NULL
}

func builtinJoin(args ...object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgCount(len(args), "2")
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return argTypeError("first", "join", "ARRAY", args[0].Type())
	}
	sep, ok := args[1].(*object.String)
	if !ok {
		return argTypeError("second", "join", "STRING", args[1].Type())
	}
	parts := make([]string, len(arr.Elements))
	for i, el := range arr.Elements {
		parts[i] = el.Inspect()
	}
	return &object.String{Value: strings.Join(parts, sep.Value)}
}

func builtinSplit(args ...object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgCount(len(args), "2")
	}
	s, ok := args[0].(*object.String)
	if !ok {
		return argTypeError("first", "split", "STRING", args[0].Type())
	}
	sep, ok := args[1].(*object.String)
	if !ok {
		return argTypeError("second", "split", "STRING", args[1].Type())
	}
	parts := strings.Split(s.Value, sep.Value)
	elements := make([]object.Object, len(parts))
	for i, p := range parts {
		elements[i] = &object.String{Value: p}
	}
	return &object.Array{Elements: elements}
}

func builtinKeys(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount(len(args), "1")
	}
	hash, err := hashOf(args[0], "keys")
	if err != nil {
		return err
	}
	elements := make([]object.Object, len(hash.Keys))
	for i, hk := range hash.Keys {
		elements[i] = hash.Pairs[hk].Key
	}
	return &object.Array{Elements: elements}
}

func builtinValues(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount(len(args), "1")
	}
	hash, err := hashOf(args[0], "values")
	if err != nil {
		return err
	}
	elements := make([]object.Object, len(hash.Keys))
	for i, hk := range hash.Keys {
		elements[i] = hash.Pairs[hk].Value
	}
	return &object.Array{Elements: elements}
}

// hashOf extracts the underlying *object.Hash from a Hash or Module
// argument. The reference implementation's `keys`/`values` builtins
// read an out-of-scope variable named `module` when given a Module;
// this always reads the argument that was actually passed.
func hashOf(arg object.Object, name string) (*object.Hash, *object.Error) {
	switch v := arg.(type) {
	case *object.Hash:
		return v, nil
	case *object.Module:
		return v.Attrs, nil
	default:
		return nil, singleArgTypeError(name, "HASH or MODULE", arg.Type())
	}
}

func builtinType(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount(len(args), "1")
	}
	return &object.String{Value: string(args[0].Type())}
}

func builtinStr(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount(len(args), "1")
	}
	return &object.String{Value: args[0].Inspect()}
}

func builtinReverse(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount(len(args), "1")
	}
	switch arg := args[0].(type) {
	case *object.String:
		runes := []rune(arg.Value)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return &object.String{Value: string(runes)}
	case *object.Array:
		length := len(arg.Elements)
		reversed := make([]object.Object, length)
		for i, el := range arg.Elements {
			reversed[length-1-i] = el
		}
		return &object.Array{Elements: reversed}
	default:
		return newError("argument to `reverse` not supported, got %s", args[0].Type())
	}
}

func builtinInt(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount(len(args), "1")
	}
	switch arg := args[0].(type) {
	case *object.Integer:
		return arg
	case *object.String:
		n, err := strconv.ParseInt(strings.TrimSpace(arg.Value), 10, 64)
		if err != nil {
			return newError("could not parse %q as integer", arg.Value)
		}
		return &object.Integer{Value: n}
	default:
		return newError("argument to `int` not supported, got %s", args[0].Type())
	}
}
