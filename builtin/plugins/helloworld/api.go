package helloworld

// ICON parameter type names.
const (
	typeAddress = "Address"
	typeBytes   = "bytes"
	typeInt     = "int"
	typeStr     = "str"
)

// methodTable lists the externally callable entry points together with the host flags each one
// is registered with.
var methodTable = []*MethodInfo{
	{
		Type:     "function",
		Name:     "name",
		Readonly: true,
		Outputs:  []*ParamInfo{{Type: typeStr}},
	},
	{
		Type:     "function",
		Name:     "hello",
		Readonly: true,
		Outputs:  []*ParamInfo{{Type: typeStr}},
	},
	{
		Type:    "fallback",
		Name:    "fallback",
		Payable: true,
	},
	{
		Type: "function",
		Name: "tokenFallback",
		Inputs: []*ParamInfo{
			{Name: "_from", Type: typeAddress},
			{Name: "_value", Type: typeInt},
			{Name: "_data", Type: typeBytes},
		},
	},
	{
		Type: "function",
		Name: "transferICX",
		Inputs: []*ParamInfo{
			{Name: "to", Type: typeAddress},
			{Name: "amount", Type: typeInt},
		},
	},
}

func apiMethods() []*MethodInfo {
	methods := make([]*MethodInfo, 0, len(methodTable))
	for _, m := range methodTable {
		clone := *m
		clone.Inputs = cloneParams(m.Inputs)
		clone.Outputs = cloneParams(m.Outputs)
		methods = append(methods, &clone)
	}
	return methods
}

func cloneParams(params []*ParamInfo) []*ParamInfo {
	if params == nil {
		return nil
	}
	out := make([]*ParamInfo, len(params))
	for i, p := range params {
		clone := *p
		out[i] = &clone
	}
	return out
}
