// Package workbook converts between a single translation workbook (one sheet
// per logical sheet) and a directory of per-sheet CSV files.
//
// Split writes `<sheet><ext>` for every sheet of the workbook; Combine reads
// every `*<ext>` file of a directory back into one workbook, ordering the
// sheets alphabetically by name. Cell values are carried as raw strings in
// both directions.
package workbook
