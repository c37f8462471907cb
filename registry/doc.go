/*
Package registry tracks the process-wide metadata stores created by enummeta.

Every lazy store registers itself under a caller-chosen name together with a
descriptor of its variant and metadata types:

	info, ok := registry.Lookup("colourMeta")
	if ok {
	    fmt.Println(info.VariantType, info.MetaType, info.Variants)
	}

Names identify process-wide caches, so registering the same name twice fails.
The registry is thread-safe and is populated during initialization, typically
by package-level store declarations or through generated code.
*/
package registry
