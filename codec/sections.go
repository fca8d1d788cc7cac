package codec

import (
	"github.com/arloliu/cadbin/model"
	"github.com/arloliu/cadbin/schema"
	"github.com/arloliu/cadbin/wire"
)

func (st *encodeState) dictionaryEntry(v *model.DictionaryEntry) wire.Offset {
	key := st.s.String(v.Key)
	value := st.s.String(v.Value)

	st.s.StartTable(schema.DictionaryEntryLayout)
	st.s.Ref(schema.EntryKey, key)
	st.s.Ref(schema.EntryValue, value)

	return st.s.EndTable()
}

func (st *decodeState) dictionaryEntry(t wire.Table) model.DictionaryEntry {
	return model.DictionaryEntry{
		Key:   t.String(schema.EntryKey),
		Value: t.String(schema.EntryValue),
	}
}

func (st *encodeState) block(v *model.Block) wire.Offset {
	id := st.s.String(v.ID)
	label := st.s.String(v.Label)
	description := st.s.OptString(v.Description)
	elements := st.encodeElements("elements", v.Elements)

	st.s.StartTable(schema.BlockLayout)
	st.s.Ref(schema.BlockID, id)
	st.s.Ref(schema.BlockLabel, label)
	st.s.Ref(schema.BlockDescription, description)
	st.s.Int32(schema.BlockVersion, v.Version)
	st.s.Ref(schema.BlockElements, elements)

	return st.s.EndTable()
}

func (st *decodeState) block(t wire.Table) model.Block {
	if !t.Has(schema.BlockID) {
		st.missing("id")
	}

	return model.Block{
		ID:          t.String(schema.BlockID),
		Label:       t.String(schema.BlockLabel),
		Description: t.OptString(schema.BlockDescription),
		Version:     t.Int32(schema.BlockVersion, 0),
		Elements:    st.decodeElements(t, schema.BlockElements, "elements"),
	}
}

func (st *encodeState) group(v *model.Group) wire.Offset {
	id := st.s.String(v.ID)
	stack := st.prepareStack(&v.Stack)

	st.s.StartTable(schema.GroupLayout)
	st.s.Ref(schema.GroupLayout.Start(schema.LayerGroup)+schema.OwnerID, id)
	st.flattenStack(schema.GroupLayout.Start(schema.LayerStack), &v.Stack, stack)

	return st.s.EndTable()
}

func (st *decodeState) group(t wire.Table) model.Group {
	idSlot := schema.GroupLayout.Start(schema.LayerGroup) + schema.OwnerID
	if !t.Has(idSlot) {
		st.missing("id")
	}

	return model.Group{
		ID:    t.String(idSlot),
		Stack: st.unflattenStack(t, schema.GroupLayout.Start(schema.LayerStack)),
	}
}

func (st *encodeState) layerOverrides(v *model.LayerOverrides) wire.Offset {
	stroke := encodeOpt(st, "stroke", v.Stroke, st.stroke)
	background := encodeOpt(st, "background", v.Background, st.background)

	st.s.StartTable(schema.LayerOverridesLayout)
	st.s.Ref(schema.LayerOverridesStroke, stroke)
	st.s.Ref(schema.LayerOverridesBackground, background)

	return st.s.EndTable()
}

func (st *decodeState) layerOverrides(t wire.Table) model.LayerOverrides {
	return model.LayerOverrides{
		Stroke:     decodeOpt(st, t, schema.LayerOverridesStroke, "stroke", st.stroke),
		Background: decodeOpt(st, t, schema.LayerOverridesBackground, "background", st.background),
	}
}

func (st *encodeState) layer(v *model.Layer) wire.Offset {
	lay := schema.LayerLayout
	id := st.s.String(v.ID)
	stack := st.prepareStack(&v.Stack)
	overrides := encodeOpt(st, "overrides", v.Overrides, st.layerOverrides)

	own := lay.Start(schema.LayerLayerOwn)
	st.s.StartTable(lay)
	st.s.Ref(lay.Start(schema.LayerLayerID)+schema.OwnerID, id)
	st.flattenStack(lay.Start(schema.LayerStack), &v.Stack, stack)
	st.s.Bool(own+schema.LayerReadOnly, v.ReadOnly)
	st.s.Ref(own+schema.LayerOverrides, overrides)

	return st.s.EndTable()
}

func (st *decodeState) layer(t wire.Table) model.Layer {
	lay := schema.LayerLayout
	idSlot := lay.Start(schema.LayerLayerID) + schema.OwnerID
	if !t.Has(idSlot) {
		st.missing("id")
	}
	own := lay.Start(schema.LayerLayerOwn)

	return model.Layer{
		ID:        t.String(idSlot),
		Stack:     st.unflattenStack(t, lay.Start(schema.LayerStack)),
		ReadOnly:  t.Bool(own+schema.LayerReadOnly, false),
		Overrides: decodeOpt(st, t, own+schema.LayerOverrides, "overrides", st.layerOverrides),
	}
}

func (st *encodeState) externalFile(v *model.ExternalFile) wire.Offset {
	id := st.s.String(v.ID)
	mime := st.s.String(v.MimeType)
	data := st.s.Bytes(v.Data)

	st.s.StartTable(schema.ExternalFileLayout)
	st.s.Ref(schema.FileID, id)
	st.s.Ref(schema.FileMimeType, mime)
	st.s.Ref(schema.FileData, data)
	st.s.Int64(schema.FileCreated, v.Created)
	st.s.OptInt64(schema.FileLastRetrieved, v.LastRetrieved)

	return st.s.EndTable()
}

func (st *decodeState) externalFile(t wire.Table) model.ExternalFile {
	if !t.Has(schema.FileID) {
		st.missing("id")
	}

	return model.ExternalFile{
		ID:            t.String(schema.FileID),
		MimeType:      t.String(schema.FileMimeType),
		Data:          t.Bytes(schema.FileData),
		Created:       t.Int64(schema.FileCreated, 0),
		LastRetrieved: t.OptInt64(schema.FileLastRetrieved),
	}
}

func (st *encodeState) globalState(v *model.GlobalState) wire.Offset {
	name := st.s.OptString(v.Name)
	background := st.s.String(v.ViewBackgroundColor)
	scope := st.s.String(v.MainScope)
	unit := encodeEnum(st, "linear_unit", v.LinearUnit, model.LinearUnitMax)
	pruning := encodeEnum(st, "pruning_level", v.PruningLevel, model.PruningLevelMax)

	st.s.StartTable(schema.GlobalStateLayout)
	st.s.Ref(schema.GlobalName, name)
	st.s.Ref(schema.GlobalViewBackgroundColor, background)
	st.s.Ref(schema.GlobalMainScope, scope)
	st.s.Int32(schema.GlobalScopeExponentThreshold, v.ScopeExponentThreshold)
	st.s.Uint8(schema.GlobalLinearUnit, unit)
	st.s.Uint8(schema.GlobalPruningLevel, pruning)

	return st.s.EndTable()
}

func (st *decodeState) globalState(t wire.Table) model.GlobalState {
	return model.GlobalState{
		Name:                   t.OptString(schema.GlobalName),
		ViewBackgroundColor:    t.String(schema.GlobalViewBackgroundColor),
		MainScope:              stringOr(t, schema.GlobalMainScope, DefaultMainScope),
		ScopeExponentThreshold: t.Int32(schema.GlobalScopeExponentThreshold, DefaultScopeExponentThreshold),
		LinearUnit: decodeEnum(st, "linear_unit",
			t.Uint8(schema.GlobalLinearUnit, uint8(DefaultLinearUnit)), model.LinearUnitMax),
		PruningLevel: decodeEnum(st, "pruning_level",
			t.Uint8(schema.GlobalPruningLevel, uint8(DefaultPruningLevel)), model.PruningLevelMax),
	}
}

func (st *encodeState) localState(v *model.LocalState) wire.Offset {
	scope := st.s.String(v.Scope)
	stroke := encodeOpt(st, "current_item_stroke", v.CurrentItemStroke, st.stroke)
	background := encodeOpt(st, "current_item_background", v.CurrentItemBackground, st.background)
	family := st.s.String(v.CurrentItemFontFamily)
	align := encodeEnum(st, "current_item_text_align", v.CurrentItemTextAlign, model.TextAlignMax)
	startHead := encodeOpt(st, "current_item_start_line_head", v.CurrentItemStartLineHead, st.lineHead)
	endHead := encodeOpt(st, "current_item_end_line_head", v.CurrentItemEndLineHead, st.lineHead)

	st.s.StartTable(schema.LocalStateLayout)
	st.s.Ref(schema.LocalScope, scope)
	st.s.Float64(schema.LocalScrollX, v.ScrollX)
	st.s.Float64(schema.LocalScrollY, v.ScrollY)
	st.s.Float64(schema.LocalZoom, v.Zoom)
	st.s.Bool(schema.LocalIsBindingEnabled, v.IsBindingEnabled)
	st.s.Ref(schema.LocalCurrentItemStroke, stroke)
	st.s.Ref(schema.LocalCurrentItemBackground, background)
	st.s.Float64(schema.LocalCurrentItemOpacity, v.CurrentItemOpacity)
	st.s.Ref(schema.LocalCurrentItemFontFamily, family)
	st.s.Float64(schema.LocalCurrentItemFontSize, v.CurrentItemFontSize)
	st.s.Uint8(schema.LocalCurrentItemTextAlign, align)
	st.s.Float64(schema.LocalCurrentItemRoundness, v.CurrentItemRoundness)
	st.s.Ref(schema.LocalCurrentItemStartLineHead, startHead)
	st.s.Ref(schema.LocalCurrentItemEndLineHead, endHead)
	st.s.Bool(schema.LocalPenMode, v.PenMode)
	st.s.Bool(schema.LocalViewModeEnabled, v.ViewModeEnabled)
	st.s.Bool(schema.LocalObjectsSnapModeEnabled, v.ObjectsSnapModeEnabled)
	st.s.Bool(schema.LocalGridModeEnabled, v.GridModeEnabled)
	st.s.Bool(schema.LocalOutlineModeEnabled, v.OutlineModeEnabled)
	st.s.Bool(schema.LocalManualSaveMode, v.ManualSaveMode)

	return st.s.EndTable()
}

func (st *decodeState) localState(t wire.Table) model.LocalState {
	return model.LocalState{
		Scope:                 stringOr(t, schema.LocalScope, DefaultScope),
		ScrollX:               t.Float64(schema.LocalScrollX, 0),
		ScrollY:               t.Float64(schema.LocalScrollY, 0),
		Zoom:                  t.Float64(schema.LocalZoom, DefaultViewZoom),
		IsBindingEnabled:      t.Bool(schema.LocalIsBindingEnabled, DefaultBindingEnabled),
		CurrentItemStroke:     decodeOpt(st, t, schema.LocalCurrentItemStroke, "current_item_stroke", st.stroke),
		CurrentItemBackground: decodeOpt(st, t, schema.LocalCurrentItemBackground, "current_item_background", st.background),
		CurrentItemOpacity:    t.Float64(schema.LocalCurrentItemOpacity, DefaultOpacity),
		CurrentItemFontFamily: t.String(schema.LocalCurrentItemFontFamily),
		CurrentItemFontSize:   t.Float64(schema.LocalCurrentItemFontSize, DefaultFontSize),
		CurrentItemTextAlign: decodeEnum(st, "current_item_text_align",
			t.Uint8(schema.LocalCurrentItemTextAlign, 0), model.TextAlignMax),
		CurrentItemRoundness: t.Float64(schema.LocalCurrentItemRoundness, 0),
		CurrentItemStartLineHead: decodeOpt(st, t, schema.LocalCurrentItemStartLineHead,
			"current_item_start_line_head", st.lineHead),
		CurrentItemEndLineHead: decodeOpt(st, t, schema.LocalCurrentItemEndLineHead,
			"current_item_end_line_head", st.lineHead),
		PenMode:                t.Bool(schema.LocalPenMode, false),
		ViewModeEnabled:        t.Bool(schema.LocalViewModeEnabled, false),
		ObjectsSnapModeEnabled: t.Bool(schema.LocalObjectsSnapModeEnabled, DefaultObjectsSnap),
		GridModeEnabled:        t.Bool(schema.LocalGridModeEnabled, false),
		OutlineModeEnabled:     t.Bool(schema.LocalOutlineModeEnabled, false),
		ManualSaveMode:         t.Bool(schema.LocalManualSaveMode, false),
	}
}

func (st *encodeState) checkpoint(v *model.Checkpoint) wire.Offset {
	lay := schema.CheckpointLayout
	base := st.prepareVersionBase(&v.VersionBase)
	data := st.s.Bytes(v.Data)

	own := lay.Start(schema.LayerCheckpoint)
	st.s.StartTable(lay)
	st.flattenVersionBase(lay.Start(schema.LayerVersionBase), &v.VersionBase, base)
	st.s.Ref(own+schema.CheckpointData, data)
	st.s.Int64(own+schema.CheckpointSizeBytes, v.SizeBytes)

	return st.s.EndTable()
}

func (st *decodeState) checkpoint(t wire.Table) model.Checkpoint {
	lay := schema.CheckpointLayout
	own := lay.Start(schema.LayerCheckpoint)

	return model.Checkpoint{
		VersionBase: st.unflattenVersionBase(t, lay.Start(schema.LayerVersionBase)),
		Data:        t.Bytes(own + schema.CheckpointData),
		SizeBytes:   t.Int64(own+schema.CheckpointSizeBytes, 0),
	}
}

func (st *encodeState) delta(v *model.Delta) wire.Offset {
	lay := schema.DeltaLayout
	base := st.prepareVersionBase(&v.VersionBase)
	patch := st.s.Bytes(v.Patch)

	st.s.StartTable(lay)
	st.flattenVersionBase(lay.Start(schema.LayerVersionBase), &v.VersionBase, base)
	st.s.Ref(lay.Start(schema.LayerDelta)+schema.DeltaPatch, patch)

	return st.s.EndTable()
}

func (st *decodeState) delta(t wire.Table) model.Delta {
	lay := schema.DeltaLayout

	return model.Delta{
		VersionBase: st.unflattenVersionBase(t, lay.Start(schema.LayerVersionBase)),
		Patch:       t.Bytes(lay.Start(schema.LayerDelta) + schema.DeltaPatch),
	}
}

func (st *encodeState) graphMetadata(v *model.VersionGraphMetadata) wire.Offset {
	pruning := encodeEnum(st, "pruning_level", v.PruningLevel, model.PruningLevelMax)

	st.s.StartTable(schema.VersionGraphMetadataLayout)
	st.s.Uint8(schema.MetadataPruningLevel, pruning)
	st.s.Int64(schema.MetadataLastPruned, v.LastPruned)
	st.s.Int64(schema.MetadataTotalSize, v.TotalSize)

	return st.s.EndTable()
}

func (st *decodeState) graphMetadata(t wire.Table) model.VersionGraphMetadata {
	return model.VersionGraphMetadata{
		PruningLevel: decodeEnum(st, "pruning_level",
			t.Uint8(schema.MetadataPruningLevel, uint8(DefaultPruningLevel)), model.PruningLevelMax),
		LastPruned: t.Int64(schema.MetadataLastPruned, 0),
		TotalSize:  t.Int64(schema.MetadataTotalSize, 0),
	}
}

func defaultGraphMetadata() model.VersionGraphMetadata {
	return model.VersionGraphMetadata{PruningLevel: DefaultPruningLevel}
}

func (st *encodeState) versionGraph(v *model.VersionGraph) wire.Offset {
	userCheckpoint := st.s.OptString(v.UserCheckpointVersionID)
	latest := st.s.String(v.LatestVersionID)
	checkpoints := encodeList(st, "checkpoints", v.Checkpoints, st.checkpoint)
	deltas := encodeList(st, "deltas", v.Deltas, st.delta)
	metadata := encodeSub(st, "metadata", &v.Metadata, st.graphMetadata)

	st.s.StartTable(schema.VersionGraphLayout)
	st.s.Ref(schema.GraphUserCheckpointVersionID, userCheckpoint)
	st.s.Ref(schema.GraphLatestVersionID, latest)
	st.s.Ref(schema.GraphCheckpoints, checkpoints)
	st.s.Ref(schema.GraphDeltas, deltas)
	st.s.Ref(schema.GraphMetadata, metadata)

	return st.s.EndTable()
}

func (st *decodeState) versionGraph(t wire.Table) model.VersionGraph {
	return model.VersionGraph{
		UserCheckpointVersionID: t.OptString(schema.GraphUserCheckpointVersionID),
		LatestVersionID:         t.String(schema.GraphLatestVersionID),
		Checkpoints:             decodeList(st, t, schema.GraphCheckpoints, "checkpoints", st.checkpoint),
		Deltas:                  decodeList(st, t, schema.GraphDeltas, "deltas", st.delta),
		Metadata: decodeSub(st, t, schema.GraphMetadata, "metadata",
			defaultGraphMetadata(), st.graphMetadata),
	}
}
