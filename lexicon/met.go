package lexicon

// METEntry holds the MET coefficients of one activity at each intensity.
// Values follow the Compendium of Physical Activities.
type METEntry struct {
	Activity string
	Low      float64
	Moderate float64
	High     float64
}

// ActivityPattern maps a transcript keyword to its canonical activity type.
// Patterns are scanned in declaration order; first substring match wins.
type ActivityPattern struct {
	Pattern  string
	Activity string
}

// IntensityPattern maps a transcript keyword to an intensity level, scanned
// in declaration order.
type IntensityPattern struct {
	Pattern   string
	Intensity string
}

// DefaultMET is used when an activity is missing from the table entirely.
const DefaultMET = 5.0

func metEntries() []METEntry {
	return []METEntry{
		{"running", 6.0, 9.8, 11.5},
		{"jogging", 6.0, 7.0, 9.8},
		{"walking", 3.5, 4.3, 5.0},
		{"cycling", 4.0, 6.8, 10.0},
		{"swimming", 6.0, 8.3, 10.0},
		{"gym", 3.5, 5.0, 6.0},
		{"weightlifting", 3.0, 5.0, 6.0},
		{"yoga", 2.5, 3.0, 4.0},
		{"pilates", 3.0, 3.5, 4.5},
		{"dancing", 4.8, 6.0, 7.8},
		{"basketball", 6.0, 8.0, 10.0},
		{"football", 7.0, 8.0, 10.0},
		{"soccer", 7.0, 8.0, 10.0},
		{"tennis", 5.0, 7.3, 9.0},
		{"badminton", 5.5, 7.0, 8.5},
		{"cricket", 4.8, 5.0, 6.0},
		{"hiit", 6.0, 8.5, 12.0},
		{"cardio", 5.0, 7.0, 9.0},
		{"treadmill", 4.0, 6.0, 8.0},
		{"elliptical", 5.0, 6.5, 8.0},
		{"rowing", 6.0, 7.0, 8.5},
		{"crossfit", 6.0, 9.0, 12.0},
		{"general exercise", 3.5, 5.0, 7.0},
	}
}

func activityPatterns() []ActivityPattern {
	// Longer variants precede their stems so e.g. "rowing machine" resolves
	// before "rowing" and "weightlifting" before "weight".
	return []ActivityPattern{
		{"running", "running"},
		{"ran", "running"},
		{"run", "running"},
		{"jogging", "jogging"},
		{"jog", "jogging"},
		{"walking", "walking"},
		{"walk", "walking"},
		{"cycling", "cycling"},
		{"bicycle", "cycling"},
		{"bike", "cycling"},
		{"swimming", "swimming"},
		{"swim", "swimming"},
		{"weightlifting", "weightlifting"},
		{"lifting", "weightlifting"},
		{"weight", "weightlifting"},
		{"gym", "gym"},
		{"yoga", "yoga"},
		{"pilates", "pilates"},
		{"dancing", "dancing"},
		{"dance", "dancing"},
		{"basketball", "basketball"},
		{"football", "football"},
		{"soccer", "soccer"},
		{"tennis", "tennis"},
		{"badminton", "badminton"},
		{"cricket", "cricket"},
		{"hiit", "hiit"},
		{"cardio", "cardio"},
		{"treadmill", "treadmill"},
		{"elliptical", "elliptical"},
		{"rowing machine", "rowing"},
		{"rowing", "rowing"},
		{"crossfit", "crossfit"},
	}
}

func intensityPatterns() []IntensityPattern {
	return []IntensityPattern{
		{"low", "low"},
		{"easy", "low"},
		{"light", "low"},
		{"slow", "low"},
		{"moderate", "moderate"},
		{"medium", "moderate"},
		{"normal", "moderate"},
		{"high", "high"},
		{"hard", "high"},
		{"intense", "high"},
		{"fast", "high"},
		{"sprint", "high"},
	}
}

// Fallback intensity classes used when a clause carries no intensity keyword.
func highIntensityActivities() []string {
	return []string{"running", "sprint", "hiit", "crossfit", "basketball", "football"}
}

func lowIntensityActivities() []string {
	return []string{"walking", "yoga", "pilates"}
}
