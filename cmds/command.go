package cmds

import (
	"fmt"
	"reflect"
)

// Command is a named action taking its arguments from the following words of the command line
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

var errorType = reflect.TypeFor[error]()

// Func wraps a function returning nothing or an error.
// Pointer parameters are optional arguments.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	fnType := fnValue.Type()
	switch fnType.NumOut() {
	case 0:
	case 1:
		if fnType.Out(0) != errorType {
			panic(fmt.Errorf("must return error, got %v", fnType.Out(0)))
		}
	default:
		panic(fmt.Errorf("must return 0 or 1 value, got %v", fnType))
	}
	return &Command{
		Func: fnValue,
	}
}

// Sub makes the sub commands available after this command
func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}

func (c *Command) argTypes() []reflect.Type {
	if !c.Func.IsValid() {
		return nil
	}
	fnType := c.Func.Type()
	ret := make([]reflect.Type, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		ret = append(ret, fnType.In(i))
	}
	return ret
}
