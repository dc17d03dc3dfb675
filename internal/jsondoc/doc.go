// Package jsondoc provides an insertion-ordered JSON document model.
//
// encoding/json decodes objects into map[string]any, which throws away the
// key order of the source document. A package manifest edited through that
// representation would come back with its fields shuffled, so this package
// keeps objects as ordered member lists instead:
//
//	doc, err := jsondoc.Parse(data)
//	if err != nil {
//	    return err
//	}
//	scripts := doc.Get("scripts")
//	scripts.Set("build", jsondoc.NewString("bun build.ts"))
//	doc.EncodeIndent(os.Stdout, "", "  ")
//
// Parsing is backed by valyala/fastjson; the parse tree is converted into
// a tagged-union Value that survives a parse → edit → encode round-trip
// with key order and number literals intact.
package jsondoc
