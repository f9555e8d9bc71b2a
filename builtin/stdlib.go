package builtin

// Std is a structural port of the original frontend's "std" library
// module descriptor table (Std.hpp): get_width/get_height exist in
// both coordinate-expression and single-pixel-expression overloads,
// get_bitdepth and get_fmt take no mode restriction.
var Std = LibraryModule{
	Name:         "std",
	Dependencies: []string{"meta"},
	Exports: []ExportedFunction{
		{Name: "get_width", ParamCount: 1, Mode: ModeExpr, InternalNameOverride: "___stdlib_std_get_width_expr"},
		{Name: "get_width", ParamCount: 2, Mode: ModeSingleExpr, InternalNameOverride: "___stdlib_std_get_width_single"},
		{Name: "get_height", ParamCount: 1, Mode: ModeExpr, InternalNameOverride: "___stdlib_std_get_height_expr"},
		{Name: "get_height", ParamCount: 2, Mode: ModeSingleExpr, InternalNameOverride: "___stdlib_std_get_height_single"},
		{Name: "get_bitdepth", ParamCount: 1, Mode: ModeAny},
		{Name: "get_fmt", ParamCount: 1, Mode: ModeAny},
	},
}

// MathBuiltins is a structural port of the unary/binary math entries in
// Builtins.cpp's builtin_functions table.
var MathBuiltins = []Descriptor{
	{Name: "sin", Arity: 1, ModeRestriction: ModeAny, ParamTypes: []ParamType{ParamValue}},
	{Name: "cos", Arity: 1, ModeRestriction: ModeAny, ParamTypes: []ParamType{ParamValue}},
	{Name: "tan", Arity: 1, ModeRestriction: ModeAny, ParamTypes: []ParamType{ParamValue}},
	{Name: "asin", Arity: 1, ModeRestriction: ModeAny, ParamTypes: []ParamType{ParamValue}},
	{Name: "acos", Arity: 1, ModeRestriction: ModeAny, ParamTypes: []ParamType{ParamValue}},
	{Name: "atan", Arity: 1, ModeRestriction: ModeAny, ParamTypes: []ParamType{ParamValue}},
	{Name: "atan2", Arity: 2, ModeRestriction: ModeAny, ParamTypes: []ParamType{ParamValue, ParamValue}},
	{Name: "exp", Arity: 1, ModeRestriction: ModeAny, ParamTypes: []ParamType{ParamValue}},
	{Name: "log", Arity: 1, ModeRestriction: ModeAny, ParamTypes: []ParamType{ParamValue}},
	{Name: "sqrt", Arity: 1, ModeRestriction: ModeAny, ParamTypes: []ParamType{ParamValue}},
	{Name: "abs", Arity: 1, ModeRestriction: ModeAny, ParamTypes: []ParamType{ParamValue}},
	{Name: "floor", Arity: 1, ModeRestriction: ModeAny, ParamTypes: []ParamType{ParamValue}},
	{Name: "round", Arity: 1, ModeRestriction: ModeAny, ParamTypes: []ParamType{ParamValue}},
}

// Lookup returns every overload of name across MathBuiltins.
func Lookup(name string) []Descriptor {
	var out []Descriptor
	for _, d := range MathBuiltins {
		if d.Name == name {
			out = append(out, d)
		}
	}
	return out
}
