package audio

// PCM is a fully decoded track: mono samples for analysis plus the rate
// needed to map sample positions back to time.
type PCM struct {
	Samples    []float64
	SampleRate int
}

// DecodePCM reads an entire file into memory as mono float64 samples.
// Only the analysis path uses this; playback streams instead.
func DecodePCM(path string) (*PCM, error) {
	p, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		p.streamer.Close()
		p.file.Close()
	}()

	rate := int(p.format.SampleRate)
	samples := make([]float64, 0, p.streamer.Len())

	buf := make([][2]float64, 2048)
	for {
		n, ok := p.streamer.Stream(buf)
		for i := 0; i < n; i++ {
			samples = append(samples, (buf[i][0]+buf[i][1])*0.5)
		}
		if !ok {
			break
		}
	}

	return &PCM{Samples: samples, SampleRate: rate}, nil
}
