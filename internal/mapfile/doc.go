// Package mapfile decodes and encodes the INI-flavored mapping file.
//
// # Format
//
//	[Layers]
//	00="C:\maps\base"
//	01="C:\maps\overlay"
//	[Targets]
//	00.0000 = 00000000
//	01.0005 = 00000015
//	[Sources]
//	00.0000 = 00000100
//	[Internal]
//	revision=7
//
// Layers are written in the document's explicit layer order with values
// always double quoted. Targets and Sources are written sorted by numeric
// layer then numeric index. Any other section is passed through; Internal
// is written first among those, the rest in first-seen order.
//
// # Leniency
//
// Decode skips lines it cannot use (no "=", or before any section header)
// so hand-edited files still load. DecodeStrict reports them as a
// *FormatError instead.
//
// # Line endings
//
// Decode accepts "\n", "\r\n" and "\r". Sniff reports which one a text
// used and whether it ended with one, so Encode can reproduce both.
package mapfile
