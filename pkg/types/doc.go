// Package types defines the data shared by every stage of project generation:
// the immutable GenerationConfig with its derived names, the variant enums,
// and the FS interface the engine reads templates and writes projects through.
package types
