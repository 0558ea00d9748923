// Package domain contains the pipeline-level entities for eegsift.
//
// It sits below every other internal package: no file, logging, or rendering
// concerns appear here. The types describe one fully processed recording and
// the error conditions the rest of the module reports.
//
//   - [Result]: everything recovered from one recording file
//   - [SensorPosition]: a montage coordinate attached to a channel
//
// Entities are built once per pipeline run and not mutated afterwards.
package domain
