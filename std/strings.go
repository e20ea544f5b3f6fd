/*
File    : glint/std/strings.go
*/

// This file defines string builtins: case conversion, trimming,
// searching, splitting, and character-code conversion. Grounded on the
// teacher's strings.go; there is no separate Char kind here, so ord/chr
// operate on single-rune Strings instead.
package std

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/akashmaji946/glint/objects"
)

func init() {
	simple("upper", upperFn)
	simple("lower", lowerFn)
	simple("trim", trimFn)
	simple("ltrim", ltrimFn)
	simple("rtrim", rtrimFn)
	simple("split", splitFn)
	simple("replace", replaceFn)
	simple("starts_with", startsWithFn)
	simple("ends_with", endsWithFn)
	simple("strcmp", strcmpFn)
	simple("substring", substringFn)
	simple("capitalize", capitalizeFn)
	simple("count", countFn)
	simple("is_digit", isDigitFn)
	simple("is_alpha", isAlphaFn)
	simple("ord", ordFn)
	simple("chr", chrFn)
}

func asString(v objects.Value) (string, error) {
	s, ok := v.(*objects.String)
	if !ok {
		return "", fmt.Errorf("expected a string, got %s", v.Type())
	}
	return s.Value, nil
}

func upperFn(args []objects.Value) (objects.Value, error) {
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	return objects.NewString(strings.ToUpper(s)), nil
}

func lowerFn(args []objects.Value) (objects.Value, error) {
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	return objects.NewString(strings.ToLower(s)), nil
}

func trimFn(args []objects.Value) (objects.Value, error) {
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	return objects.NewString(strings.TrimSpace(s)), nil
}

func ltrimFn(args []objects.Value) (objects.Value, error) {
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	return objects.NewString(strings.TrimLeftFunc(s, unicode.IsSpace)), nil
}

func rtrimFn(args []objects.Value) (objects.Value, error) {
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	return objects.NewString(strings.TrimRightFunc(s, unicode.IsSpace)), nil
}

func splitFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("split expects 2 arguments (str, sep), got %d", len(args))
	}
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	sep, err := asString(args[1])
	if err != nil {
		return nil, err
	}
	parts := strings.Split(s, sep)
	items := make([]objects.Value, len(parts))
	for i, p := range parts {
		items[i] = objects.NewString(p)
	}
	return objects.NewList(items), nil
}

func replaceFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("replace expects 3 arguments (str, old, new), got %d", len(args))
	}
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	old, err := asString(args[1])
	if err != nil {
		return nil, err
	}
	newSub, err := asString(args[2])
	if err != nil {
		return nil, err
	}
	return objects.NewString(strings.ReplaceAll(s, old, newSub)), nil
}

func startsWithFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("starts_with expects 2 arguments, got %d", len(args))
	}
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	prefix, err := asString(args[1])
	if err != nil {
		return nil, err
	}
	return objects.NewBool(strings.HasPrefix(s, prefix)), nil
}

func endsWithFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("ends_with expects 2 arguments, got %d", len(args))
	}
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	suffix, err := asString(args[1])
	if err != nil {
		return nil, err
	}
	return objects.NewBool(strings.HasSuffix(s, suffix)), nil
}

func strcmpFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("strcmp expects 2 arguments, got %d", len(args))
	}
	a, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asString(args[1])
	if err != nil {
		return nil, err
	}
	switch {
	case a < b:
		return objects.NewNumberInt(-1), nil
	case a > b:
		return objects.NewNumberInt(1), nil
	}
	return objects.NewNumberInt(0), nil
}

func substringFn(args []objects.Value) (objects.Value, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, fmt.Errorf("substring expects 2 or 3 arguments, got %d", len(args))
	}
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	strLen := int64(len(runes))
	start := asIntArg(args[1])
	if start < 0 || start > strLen {
		return nil, fmt.Errorf("substring start index out of bounds")
	}
	length := strLen - start
	if len(args) == 3 {
		length = asIntArg(args[2])
	}
	if length < 0 || start+length > strLen {
		return nil, fmt.Errorf("substring length out of bounds")
	}
	return objects.NewString(string(runes[start : start+length])), nil
}

func capitalizeFn(args []objects.Value) (objects.Value, error) {
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	if len(s) == 0 {
		return objects.NewString(""), nil
	}
	runes := []rune(s)
	return objects.NewString(strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:]))), nil
}

func countFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("count expects 2 arguments, got %d", len(args))
	}
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	sub, err := asString(args[1])
	if err != nil {
		return nil, err
	}
	return objects.NewNumberInt(int64(strings.Count(s, sub))), nil
}

func isDigitFn(args []objects.Value) (objects.Value, error) {
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	if len(s) == 0 {
		return objects.NewBool(false), nil
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return objects.NewBool(false), nil
		}
	}
	return objects.NewBool(true), nil
}

func isAlphaFn(args []objects.Value) (objects.Value, error) {
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	if len(s) == 0 {
		return objects.NewBool(false), nil
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return objects.NewBool(false), nil
		}
	}
	return objects.NewBool(true), nil
}

// ordFn returns the Unicode code point of a single-character string,
// or its first rune if longer.
func ordFn(args []objects.Value) (objects.Value, error) {
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	if len(s) == 0 {
		return nil, fmt.Errorf("ord expects a non-empty string")
	}
	return objects.NewNumberInt(int64([]rune(s)[0])), nil
}

func chrFn(args []objects.Value) (objects.Value, error) {
	if _, ok := args[0].(*objects.Number); !ok {
		return nil, fmt.Errorf("chr expects a number, got %s", args[0].Type())
	}
	return objects.NewString(string(rune(asIntArg(args[0])))), nil
}
