// Package luabind exposes a Chance to Lua scripts as the global table
// "chance".
//
//	chance.seed(42)
//	chance.set("colors", {"red", "green"})
//	chance.append("colors", {"blue"})
//	local names = chance.unique(chance.name, 3)
//	local total, roll, hit = chance.dice("1d20+5", 15)
//	return chance.fromSet("colors"), total, hit, roll.margin
//
// Errors from the library are raised as Lua errors. Absent results, such
// as fromSet on an undefined set, return nil.
package luabind

import (
	"fmt"
	"strings"

	"github.com/Shopify/go-lua"
	"github.com/louisbranch/chance"
	"github.com/louisbranch/chance/internal/catalog"
	apperrors "github.com/louisbranch/chance/internal/platform/errors"
)

// GlobalName is the Lua global the binding installs.
const GlobalName = "chance"

// setKeyPrefix namespaces Lua generator functions in the registry.
const setKeyPrefix = "chance.set."

// Open installs the chance table into state, bound to c.
func Open(state *lua.State, c *chance.Chance) {
	state.NewTable()
	lua.SetFunctions(state, generatorFunctions(c), 0)
	lua.SetFunctions(state, coreFunctions(c), 0)
	state.SetGlobal(GlobalName)
}

// Eval runs source in a fresh state bound to c and returns the chunk's
// results converted to Go values.
func Eval(c *chance.Chance, source string) ([]any, error) {
	state := lua.NewState()
	lua.OpenLibraries(state)
	Open(state, c)

	if err := lua.LoadString(state, source); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	if err := state.ProtectedCall(0, lua.MultipleReturns, 0); err != nil {
		return nil, fmt.Errorf("run lua: %w", err)
	}

	count := state.Top()
	results := make([]any, count)
	for i := 1; i <= count; i++ {
		results[i-1] = luaToGo(state, i)
	}
	state.SetTop(0)
	return results, nil
}

func coreFunctions(c *chance.Chance) []lua.RegistryFunction {
	return []lua.RegistryFunction{
		{Name: "seed", Function: func(state *lua.State) int {
			if state.IsNoneOrNil(1) {
				lua.ArgumentError(state, 1, "seed expected")
				return 0
			}
			if err := c.Seed(luaToGo(state, 1)); err != nil {
				return raise(state, err)
			}
			return 0
		}},
		{Name: "random", Function: func(state *lua.State) int {
			switch state.Top() {
			case 0:
				state.PushNumber(c.Random())
			case 1:
				state.PushInteger(c.Roll(lua.CheckInteger(state, 1)))
			default:
				state.PushInteger(c.Range(lua.CheckInteger(state, 1), lua.CheckInteger(state, 2)))
			}
			return 1
		}},
		{Name: "set", Function: func(state *lua.State) int {
			name := lua.CheckString(state, 1)
			if state.TypeOf(2) == lua.TypeFunction {
				defineFunction(state, c, name, 2)
				return 0
			}
			c.DefineValues(name, checkSequence(state, 2)...)
			return 0
		}},
		{Name: "append", Function: func(state *lua.State) int {
			name := lua.CheckString(state, 1)
			if err := c.Append(name, checkSequence(state, 2)...); err != nil {
				return raise(state, err)
			}
			return 0
		}},
		{Name: "fromSet", Function: func(state *lua.State) int {
			value, ok := c.FromSet(lua.CheckString(state, 1))
			if !ok {
				state.PushNil()
				return 1
			}
			pushValue(state, value)
			return 1
		}},
		{Name: "pick", Function: func(state *lua.State) int {
			items := checkSequence(state, 1)
			if state.IsNoneOrNil(2) {
				v, err := chance.Pick(c, items)
				if err != nil {
					return raise(state, err)
				}
				pushValue(state, v)
				return 1
			}
			picked, err := chance.PickN(c, items, lua.CheckInteger(state, 2))
			if err != nil {
				return raise(state, err)
			}
			pushSlice(state, picked)
			return 1
		}},
		{Name: "pickUnique", Function: func(state *lua.State) int {
			picked, err := chance.PickUnique(c, checkSequence(state, 1), lua.CheckInteger(state, 2))
			if err != nil {
				return raise(state, err)
			}
			pushSlice(state, picked)
			return 1
		}},
		{Name: "shuffle", Function: func(state *lua.State) int {
			pushSlice(state, chance.Shuffle(c, checkSequence(state, 1)))
			return 1
		}},
		{Name: "weighted", Function: func(state *lua.State) int {
			value, ok, err := chance.Weighted(c, checkSequence(state, 1), checkWeights(state, 2))
			if err != nil {
				return raise(state, err)
			}
			if !ok {
				state.PushNil()
				return 1
			}
			pushValue(state, value)
			return 1
		}},
		{Name: "n", Function: func(state *lua.State) int {
			lua.CheckType(state, 1, lua.TypeFunction)
			count := lua.CheckInteger(state, 2)
			pushSlice(state, chance.N(count, bindCall(state, 1, 3)))
			return 1
		}},
		{Name: "unique", Function: func(state *lua.State) int {
			lua.CheckType(state, 1, lua.TypeFunction)
			count := lua.CheckInteger(state, 2)
			values, err := chance.UniqueBy(c, count, bindCall(state, 1, 3), valueKey)
			if err != nil {
				return raise(state, err)
			}
			pushSlice(state, values)
			return 1
		}},
		{Name: "dice", Function: func(state *lua.State) int {
			result, err := c.Dice(lua.CheckString(state, 1))
			if err != nil {
				return raise(state, err)
			}
			state.PushInteger(result.Total)
			pushDiceResult(state, result)
			if state.IsNoneOrNil(2) {
				return 2
			}
			outcome := result.Check(lua.CheckInteger(state, 2))
			pushOutcome(state, outcome)
			state.PushBoolean(outcome.Success)
			return 3
		}},
		{Name: "generators", Function: func(state *lua.State) int {
			pushSlice(state, catalog.Names())
			return 1
		}},
	}
}

// generatorFunctions exposes every named catalog generator, then replaces
// the ones that take arguments.
func generatorFunctions(c *chance.Chance) []lua.RegistryFunction {
	names := catalog.Names()
	fns := make([]lua.RegistryFunction, 0, len(names)+16)
	for _, name := range names {
		fns = append(fns, lua.RegistryFunction{Name: name, Function: func(state *lua.State) int {
			value, err := c.Generate(name)
			if err != nil {
				return raise(state, err)
			}
			pushValue(state, value)
			return 1
		}})
	}

	return append(fns,
		lua.RegistryFunction{Name: "bool", Function: func(state *lua.State) int {
			state.PushBoolean(c.Bool(chance.BoolOptions{Likelihood: lua.OptInteger(state, 1, 0)}))
			return 1
		}},
		lua.RegistryFunction{Name: "integer", Function: func(state *lua.State) int {
			state.PushInteger(c.Integer(chance.IntegerOptions{
				Min: lua.OptInteger(state, 1, 0),
				Max: lua.OptInteger(state, 2, 0),
			}))
			return 1
		}},
		lua.RegistryFunction{Name: "natural", Function: func(state *lua.State) int {
			state.PushInteger(c.Natural(lua.OptInteger(state, 1, 0)))
			return 1
		}},
		lua.RegistryFunction{Name: "float", Function: func(state *lua.State) int {
			state.PushNumber(c.Float(chance.FloatOptions{
				Min:   lua.OptNumber(state, 1, 0),
				Max:   lua.OptNumber(state, 2, 0),
				Fixed: lua.OptInteger(state, 3, 0),
			}))
			return 1
		}},
		lua.RegistryFunction{Name: "string", Function: func(state *lua.State) int {
			state.PushString(c.String(chance.StringOptions{
				Length: lua.OptInteger(state, 1, 0),
				Pool:   lua.OptString(state, 2, ""),
			}))
			return 1
		}},
		lua.RegistryFunction{Name: "hash", Function: func(state *lua.State) int {
			state.PushString(c.Hash(lua.OptInteger(state, 1, 0)))
			return 1
		}},
		lua.RegistryFunction{Name: "word", Function: func(state *lua.State) int {
			state.PushString(c.Word(chance.WordOptions{Syllables: lua.OptInteger(state, 1, 0)}))
			return 1
		}},
		lua.RegistryFunction{Name: "sentence", Function: func(state *lua.State) int {
			state.PushString(c.Sentence(chance.SentenceOptions{Words: lua.OptInteger(state, 1, 0)}))
			return 1
		}},
		lua.RegistryFunction{Name: "paragraph", Function: func(state *lua.State) int {
			state.PushString(c.Paragraph(chance.ParagraphOptions{Sentences: lua.OptInteger(state, 1, 0)}))
			return 1
		}},
		lua.RegistryFunction{Name: "name", Function: func(state *lua.State) int {
			opts := chance.NameOptions{}
			if state.TypeOf(1) == lua.TypeTable {
				fields := tableToMap(state, 1)
				opts.Middle = truthy(fields["middle"])
				opts.Prefix = truthy(fields["prefix"])
				opts.Suffix = truthy(fields["suffix"])
			}
			state.PushString(c.Name(opts))
			return 1
		}},
		lua.RegistryFunction{Name: "age", Function: func(state *lua.State) int {
			state.PushInteger(c.Age(chance.AgeOptions{Kind: lua.OptString(state, 1, "")}))
			return 1
		}},
		lua.RegistryFunction{Name: "year", Function: func(state *lua.State) int {
			state.PushInteger(c.Year(chance.YearOptions{
				Min: lua.OptInteger(state, 1, 0),
				Max: lua.OptInteger(state, 2, 0),
			}))
			return 1
		}},
		lua.RegistryFunction{Name: "uri", Function: func(state *lua.State) int {
			state.PushString(c.URI(chance.URIOptions{
				Scheme: lua.OptString(state, 1, ""),
				Path:   lua.OptString(state, 2, ""),
			}))
			return 1
		}},
		lua.RegistryFunction{Name: "color", Function: func(state *lua.State) int {
			format := chance.ColorFormat(strings.ToLower(lua.OptString(state, 1, "")))
			state.PushString(c.Color(chance.ColorOptions{Format: format}))
			return 1
		}},
		lua.RegistryFunction{Name: "dollar", Function: func(state *lua.State) int {
			state.PushString(c.Dollar(chance.DollarOptions{Max: lua.OptNumber(state, 1, 0)}))
			return 1
		}},
	)
}

// defineFunction stores the Lua function at index in the registry and
// defines a generated data set that calls it. The set stays bound to state,
// so it keeps working after Eval returns. A call that raises a Lua error
// yields nil.
func defineFunction(state *lua.State, c *chance.Chance, name string, index int) {
	key := setKeyPrefix + name
	state.PushValue(index)
	state.SetField(lua.RegistryIndex, key)
	c.DefineFunc(name, func() any {
		state.Field(lua.RegistryIndex, key)
		if err := state.ProtectedCall(0, 1, 0); err != nil {
			state.Pop(1)
			return nil
		}
		value := luaToGo(state, -1)
		state.Pop(1)
		return value
	})
}

// bindCall returns a closure calling the function at fn with the stack
// values from firstArg to the current top as arguments.
func bindCall(state *lua.State, fn, firstArg int) func() any {
	last := state.Top()
	argc := max(last-firstArg+1, 0)
	return func() any {
		state.PushValue(fn)
		for i := 0; i < argc; i++ {
			state.PushValue(firstArg + i)
		}
		state.Call(argc, 1)
		value := luaToGo(state, -1)
		state.Pop(1)
		return value
	}
}

// valueKey identifies converted Lua values for duplicate detection.
func valueKey(value any) string {
	return fmt.Sprintf("%T:%v", value, value)
}

func truthy(value any) bool {
	b, ok := value.(bool)
	return ok && b
}

// raise converts err to a Lua error. Recoverable codes push nil instead.
func raise(state *lua.State, err error) int {
	if apperrors.CodeOf(err).Recoverable() {
		state.PushNil()
		return 1
	}
	lua.Errorf(state, "%s", err.Error())
	return 0
}
