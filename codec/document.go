package codec

import (
	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/model"
	"github.com/arloliu/cadbin/schema"
	"github.com/arloliu/cadbin/wire"
)

func (st *encodeState) document(doc *model.Document, cfg *EncoderConfig) wire.Offset {
	typ := doc.Type
	if typ == "" {
		typ = cfg.documentType
	}
	source := doc.Source
	if source == "" {
		source = cfg.source
	}

	typeRef := st.s.String(typ)
	version := st.s.String(cfg.schemaVersion)
	sourceRef := st.s.String(source)
	thumbnail := st.s.Bytes(doc.Thumbnail)
	dictionary := encodeList(st, "dictionary", doc.Dictionary, st.dictionaryEntry)
	elements := st.encodeElements("elements", doc.Elements)
	blocks := encodeList(st, "blocks", doc.Blocks, st.block)
	groups := encodeList(st, "groups", doc.Groups, st.group)
	layers := encodeList(st, "layers", doc.Layers, st.layer)
	global := encodeOpt(st, "global_state", doc.GlobalState, st.globalState)
	local := encodeOpt(st, "local_state", doc.LocalState, st.localState)
	files := encodeList(st, "external_files", doc.Files, st.externalFile)
	graph := encodeOpt(st, "version_graph", doc.VersionGraph, st.versionGraph)

	st.s.StartTable(schema.DocumentLayout)
	st.s.Ref(schema.RootType, typeRef)
	st.s.Ref(schema.RootVersion, version)
	st.s.Int32(schema.RootSchemaVersion, cfg.schemaNumber)
	st.s.Ref(schema.RootSource, sourceRef)
	st.s.Ref(schema.RootThumbnail, thumbnail)
	st.s.Ref(schema.RootDictionary, dictionary)
	st.s.Ref(schema.RootElements, elements)
	st.s.Ref(schema.RootBlocks, blocks)
	st.s.Ref(schema.RootGroups, groups)
	st.s.Ref(schema.RootLayers, layers)
	st.s.Ref(schema.RootGlobalState, global)
	st.s.Ref(schema.RootLocalState, local)
	st.s.Ref(schema.RootExternalFiles, files)
	st.s.Ref(schema.RootVersionGraph, graph)

	return st.s.EndTable()
}

func (st *decodeState) document(t wire.Table) *model.Document {
	doc := &model.Document{
		Type:    stringOr(t, schema.RootType, DefaultDocumentType),
		Version: st.version(t),
		Source:  stringOr(t, schema.RootSource, DefaultSource),
	}
	if st.failed() {
		return nil
	}

	doc.Thumbnail = t.Bytes(schema.RootThumbnail)
	doc.Dictionary = decodeList(st, t, schema.RootDictionary, "dictionary", st.dictionaryEntry)
	doc.Elements = st.decodeElements(t, schema.RootElements, "elements")
	if st.failed() {
		return nil
	}

	doc.Blocks = decodeList(st, t, schema.RootBlocks, "blocks", st.block)
	doc.Groups = decodeList(st, t, schema.RootGroups, "groups", st.group)
	doc.Layers = decodeList(st, t, schema.RootLayers, "layers", st.layer)
	doc.GlobalState = decodeOpt(st, t, schema.RootGlobalState, "global_state", st.globalState)
	doc.LocalState = decodeOpt(st, t, schema.RootLocalState, "local_state", st.localState)
	doc.Files = decodeList(st, t, schema.RootExternalFiles, "external_files", st.externalFile)
	doc.VersionGraph = decodeOpt(st, t, schema.RootVersionGraph, "version_graph", st.versionGraph)
	if st.failed() {
		return nil
	}

	return doc
}

// version returns the schema version string of a document. Buffers that only carry the
// packed number get it unpacked; buffers with neither get the current version.
func (st *decodeState) version(t wire.Table) string {
	if t.Has(schema.RootVersion) {
		return t.String(schema.RootVersion)
	}

	n, ok := t.Int32(schema.RootSchemaVersion, 0), t.Has(schema.RootSchemaVersion)
	if !ok {
		return schema.CurrentVersion
	}

	v, err := schema.VersionString(n)
	if err != nil {
		st.fail(errs.New(errs.PhaseDecode, errs.ErrInvalidVersion).
			Path(st.at("schema_version")...).
			Value(n).
			Cause(err).
			Build())

		return ""
	}

	return v
}
