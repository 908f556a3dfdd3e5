// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package schema names the tables, columns and constraints of the blog schema.

Repositories build their SQL from these values so a rename in a migration
has exactly one place to follow in Go.
*/
package schema
