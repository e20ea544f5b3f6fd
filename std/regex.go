/*
File    : glint/std/regex.go
*/

// This file defines regular-expression builtins on top of regexp.
// Grounded on the teacher's regex.go.
package std

import (
	"fmt"
	"regexp"

	"github.com/akashmaji946/glint/objects"
)

func init() {
	simple("match_regex", matchRegexFn)
	simple("find_regex", findRegexFn)
	simple("findall_regex", findallRegexFn)
	simple("replace_regex", replaceRegexFn)
	simple("split_regex", splitRegexFn)
}

func matchRegexFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("match_regex expects 2 arguments (pattern, str)")
	}
	matched, err := regexp.MatchString(args[0].String(), args[1].String())
	if err != nil {
		return nil, fmt.Errorf("invalid regex pattern: %w", err)
	}
	return objects.NewBool(matched), nil
}

func findRegexFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("find_regex expects 2 arguments (pattern, str)")
	}
	re, err := regexp.Compile(args[0].String())
	if err != nil {
		return nil, fmt.Errorf("invalid regex pattern: %w", err)
	}
	return objects.NewString(re.FindString(args[1].String())), nil
}

func findallRegexFn(args []objects.Value) (objects.Value, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, fmt.Errorf("findall_regex expects 2 or 3 arguments (pattern, str, [n])")
	}
	re, err := regexp.Compile(args[0].String())
	if err != nil {
		return nil, fmt.Errorf("invalid regex pattern: %w", err)
	}
	n := -1
	if len(args) == 3 {
		n = int(asIntArg(args[2]))
	}
	matches := re.FindAllString(args[1].String(), n)
	items := make([]objects.Value, len(matches))
	for i, m := range matches {
		items[i] = objects.NewString(m)
	}
	return objects.NewList(items), nil
}

func replaceRegexFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("replace_regex expects 3 arguments (pattern, str, repl)")
	}
	re, err := regexp.Compile(args[0].String())
	if err != nil {
		return nil, fmt.Errorf("invalid regex pattern: %w", err)
	}
	return objects.NewString(re.ReplaceAllString(args[1].String(), args[2].String())), nil
}

func splitRegexFn(args []objects.Value) (objects.Value, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, fmt.Errorf("split_regex expects 2 or 3 arguments (pattern, str, [n])")
	}
	re, err := regexp.Compile(args[0].String())
	if err != nil {
		return nil, fmt.Errorf("invalid regex pattern: %w", err)
	}
	n := -1
	if len(args) == 3 {
		n = int(asIntArg(args[2]))
	}
	parts := re.Split(args[1].String(), n)
	items := make([]objects.Value, len(parts))
	for i, p := range parts {
		items[i] = objects.NewString(p)
	}
	return objects.NewList(items), nil
}
