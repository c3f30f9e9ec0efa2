// Package analysis detects beats in decoded audio.
//
// The pipeline is a standard spectral-flux onset detector:
//
//   - [Detect]: Hann-windowed FFT frames, positive spectral flux,
//     adaptive peak picking, and a median-interval BPM estimate
//
// Results feed the `analyze` command's report and the onset-synced beat
// source used by `play --sync`.
package analysis
