// Package recipe applies named sequences of TextBox operations loaded from
// TOML or YAML files.
//
// Package: recipe
// Title: TextBox Recipes
// Description: A recipe is an ordered list of steps, each naming a TextBox
//              operation (cut, cut_from, replace, replace_pattern, append,
//              prepend) with its arguments. Recipes are validated when they
//              are loaded; a Runner applies them and logs every step.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
//
// A TOML recipe:
//
//	name = "slug"
//
//	[[steps]]
//	op = "replace_pattern"
//	pattern = "/[^a-z0-9]+/i"
//	template = "-"
//
//	[[steps]]
//	op = "prepend"
//	text = "post-"
//
// Running it:
//
//	r, err := recipe.Load("slug.toml")
//	if err != nil {
//		return err
//	}
//	out, err := recipe.NewRunner(logger).Run(ctx, r, "Hello World")
//	// out == "post-Hello-World"
package recipe
