package luabind

import (
	"fmt"
	"math"
	"time"

	"github.com/Shopify/go-lua"
	"github.com/louisbranch/chance"
	"github.com/spf13/cast"
)

func luaToGo(state *lua.State, index int) any {
	switch state.TypeOf(index) {
	case lua.TypeString:
		value, _ := state.ToString(index)
		return value
	case lua.TypeNumber:
		value, _ := state.ToNumber(index)
		return normalizeNumber(value)
	case lua.TypeBoolean:
		return state.ToBoolean(index)
	case lua.TypeTable:
		return tableToGo(state, index)
	case lua.TypeUserData:
		return state.ToUserData(index)
	default:
		return nil
	}
}

// tableToGo returns []any for sequences and map[string]any otherwise.
func tableToGo(state *lua.State, index int) any {
	if state.TypeOf(index) != lua.TypeTable {
		return nil
	}

	index = state.AbsIndex(index)
	isArray := true
	maxIndex := 0
	count := 0
	state.PushNil()
	for state.Next(index) {
		if isArray {
			if state.TypeOf(-2) != lua.TypeNumber {
				isArray = false
			} else if idx, ok := state.ToInteger(-2); ok && idx > 0 {
				count++
				if idx > maxIndex {
					maxIndex = idx
				}
			} else {
				isArray = false
			}
		}
		state.Pop(1)
	}

	if isArray && count > 0 && maxIndex == count {
		result := make([]any, 0, maxIndex)
		for i := 1; i <= maxIndex; i++ {
			state.RawGetInt(index, i)
			result = append(result, luaToGo(state, -1))
			state.Pop(1)
		}
		return result
	}

	return tableToMap(state, index)
}

func tableToMap(state *lua.State, index int) map[string]any {
	output := map[string]any{}
	if state.TypeOf(index) != lua.TypeTable {
		return output
	}

	index = state.AbsIndex(index)
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			key, _ := state.ToString(-2)
			output[key] = luaToGo(state, -1)
		}
		state.Pop(1)
	}
	return output
}

func normalizeNumber(value float64) any {
	if math.Mod(value, 1) == 0 && value >= math.MinInt64 && value < math.MaxInt64 {
		return int(value)
	}
	return value
}

// checkSequence returns the table argument at index as a slice. Only a
// table with no keys at all is an empty sequence; holes such as {1, nil, 3}
// are argument errors.
func checkSequence(state *lua.State, index int) []any {
	lua.CheckType(state, index, lua.TypeTable)
	switch v := tableToGo(state, index).(type) {
	case []any:
		return v
	case map[string]any:
		if len(v) == 0 && tableIsEmpty(state, index) {
			return []any{}
		}
	}
	lua.ArgumentError(state, index, "sequence expected")
	return nil
}

func tableIsEmpty(state *lua.State, index int) bool {
	index = state.AbsIndex(index)
	state.PushNil()
	if state.Next(index) {
		state.Pop(2)
		return false
	}
	return true
}

func checkWeights(state *lua.State, index int) []int {
	values := checkSequence(state, index)
	weights := make([]int, len(values))
	for i, v := range values {
		w, err := cast.ToIntE(v)
		if err != nil {
			lua.ArgumentError(state, index, fmt.Sprintf("weight %d is not a number", i+1))
			return nil
		}
		weights[i] = w
	}
	return weights
}

// pushValue pushes a Go value produced by a generator onto the stack.
func pushValue(state *lua.State, value any) {
	switch v := value.(type) {
	case nil:
		state.PushNil()
	case bool:
		state.PushBoolean(v)
	case int:
		state.PushInteger(v)
	case int64:
		state.PushInteger(int(v))
	case uint64:
		state.PushNumber(float64(v))
	case float64:
		state.PushNumber(v)
	case string:
		state.PushString(v)
	case time.Time:
		state.PushString(v.Format(time.RFC3339))
	case []string:
		pushSlice(state, v)
	case []int:
		pushSlice(state, v)
	case []any:
		pushSlice(state, v)
	case map[string]any:
		state.CreateTable(0, len(v))
		for key, item := range v {
			pushValue(state, item)
			state.SetField(-2, key)
		}
	case chance.DiceResult:
		pushDiceResult(state, v)
	default:
		state.PushString(cast.ToString(v))
	}
}

func pushSlice[T any](state *lua.State, values []T) {
	state.CreateTable(len(values), 0)
	for i, v := range values {
		pushValue(state, v)
		state.RawSetInt(-2, i+1)
	}
}

func pushDiceResult(state *lua.State, result chance.DiceResult) {
	state.CreateTable(0, 3)
	state.PushInteger(result.Total)
	state.SetField(-2, "total")
	state.PushInteger(result.Modifier)
	state.SetField(-2, "modifier")
	state.CreateTable(len(result.Rolls), 0)
	for i, roll := range result.Rolls {
		state.CreateTable(0, 3)
		state.PushInteger(roll.Sides)
		state.SetField(-2, "sides")
		state.PushInteger(roll.Total)
		state.SetField(-2, "total")
		pushSlice(state, roll.Results)
		state.SetField(-2, "results")
		state.RawSetInt(-2, i+1)
	}
	state.SetField(-2, "rolls")
}

// pushOutcome adds the check fields to the roll table on top of the stack.
func pushOutcome(state *lua.State, outcome chance.DiceOutcome) {
	state.PushInteger(outcome.Difficulty)
	state.SetField(-2, "difficulty")
	state.PushBoolean(outcome.Success)
	state.SetField(-2, "success")
	state.PushInteger(outcome.Margin)
	state.SetField(-2, "margin")
}
