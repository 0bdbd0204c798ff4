package seed

// rotationDay is one day of the built-in violin rotation.
type rotationDay struct {
	Title      string
	Warmup     string
	Scales     string
	Repertoire string
	BlockA     []string
	BlockB     []string
}

// rotation is the 14-day intermediate violin practice rotation shipped
// as sample content. Index i holds day number i+1. The exercise lists
// are inserted in source order with display_order starting at 1;
// blockA gets display_order 1, blockB gets 2.
var rotation = []rotationDay{
	{
		Title:  "Day 1: Detaché/Tone + String Crossings",
		Warmup: "Open strings → Finger tapping → Schradieck Ex. 1 → Simple 1st-3rd shifts",
		Scales: "Open string group (G, D, A major; E minor) - 3 octaves with separate bows and slurred patterns",
		BlockA: []string{
			"Kreutzer #2 - Sustained detaché, bow distribution",
			"Sevcik Op. 3, Variations 1-3 - Whole bow exercises",
			"Kreutzer #4 - String crossing with full bow",
		},
		BlockB: []string{
			"Sevcik Op. 8 - Adjacent string crossing exercises",
			"Dont Op. 37 #2 - String crossing etude",
		},
		Repertoire: "Bruch: Slow practice of opening (mm. 1-30), focus on tone quality and bow distribution",
	},
	{
		Title:  "Day 2: Shifting (Positions 3-5) + Intonation",
		Warmup: "Open strings → Finger tapping → Schradieck Ex. 2 → Simple 1st-3rd shifts",
		Scales: "Open string group - Focus on arpeggios and different bowings",
		BlockA: []string{
			"Whistler Introducing Positions Book 2 - 3rd-5th position exercises",
			"Kreutzer #8 - 3rd position work",
			"Sevcik Op. 8 - Shifting exercises (1st, 3rd, 5th positions)",
		},
		BlockB: []string{
			"Scales Plus! - Current scale with position shifts",
			"Trott Melodious Double Stops #1-3 - Slow, for intonation",
		},
		Repertoire: "Bach D minor: Isolate and drill all shifts in the Allemande",
	},
	{
		Title:  "Day 3: Martelé/Articulation + Bow Strokes",
		Warmup: "Open strings → Finger tapping → Schradieck Ex. 3 → Simple 1st-3rd shifts",
		Scales: "First finger group (C, F major; D, G minor) - 3 octaves",
		BlockA: []string{
			"Kreutzer #1 - Martelé articulation",
			"Mazas Op. 36 Book 1, #3 - Brilliant study with martelé",
			"Sevcik Op. 3 - Variations with stopped bow strokes",
		},
		BlockB: []string{
			"Schradieck Book 1, Ex. 4-6 - Clean articulation",
			"Dont Op. 37 #4 - Staccato/articulation study",
		},
		Repertoire: "Bruch: Articulated passages (running sixteenths), focus on clarity",
	},
	{
		Title:  "Day 4: Double Stops (Thirds/Sixths) + Left Hand",
		Warmup: "Open strings → Finger tapping → Schradieck Ex. 1 → Simple 1st-3rd shifts",
		Scales: "First finger group - Arpeggios and different patterns",
		BlockA: []string{
			"Polo Double Stops - Thirds exercises (easier keys)",
			"Trott Melodious Double Stops #7-10 - Thirds",
			"Sevcik Op. 8 - Double-stop preparatory exercises",
		},
		BlockB: []string{
			"Whistler Developing Double Stops - Thirds exercises",
			"Mazas Op. 36 Book 2, #4 - Thirds study",
		},
		Repertoire: "Bach D minor: Chaconne double-stop variations or chord practice",
	},
	{
		Title:  "Day 5: Spiccato/Off-String + Agility",
		Warmup: "Open strings → Finger tapping → Schradieck Ex. 2 → Simple 1st-3rd shifts",
		Scales: "Second finger group (Bb, Eb major; C, F minor) - 3 octaves",
		BlockA: []string{
			"Kreutzer #5 - Spiccato development",
			"Mazas Op. 36 Book 1, #10 - Spiccato etude",
			"Sevcik Op. 3 - Variations with spiccato bowing",
		},
		BlockB: []string{
			"Dont Op. 37 #8 - Velocity study with light bow",
			"Schradieck with spiccato bowing pattern",
		},
		Repertoire: "Bruch: Passages requiring spiccato or light bowing texture",
	},
	{
		Title:  "Day 6: Shifting (Higher Positions) + Patterns",
		Warmup: "Open strings → Finger tapping → Schradieck Ex. 3 → Simple 1st-5th shifts",
		Scales: "Second finger group - Arpeggios and chromatic patterns",
		BlockA: []string{
			"Kreutzer #13 - Position work through 7th position",
			"Rode #4 or #7 - Higher position études",
			"Sevcik Op. 8 - Chromatic shifting exercises",
		},
		BlockB: []string{
			"Whistler Introducing Positions - 5th-7th position exercises",
			"Scales Plus! - Chromatic scales and patterns",
		},
		Repertoire: "Bruch or Bach: Identify highest position passages, isolate and drill",
	},
	{
		Title:  "Day 7: Double Stops (Octaves/Mixed) + Coordination",
		Warmup: "Open strings → Finger tapping → Schradieck Ex. 1 → Simple 1st-3rd shifts",
		Scales: "Third finger group (B, E major; C#, F# minor) - 3 octaves",
		BlockA: []string{
			"Polo Double Stops - Octave exercises",
			"Trott Melodious Double Stops #18-20 - Octaves",
			"Sevcik Op. 8 - Octave preparation",
		},
		BlockB: []string{
			"Whistler Developing Double Stops - Octave section",
			"Kreutzer #32 or #33 - Octave studies",
		},
		Repertoire: "Bach D minor: Double-stop passages, both notes speaking clearly",
	},
	{
		Title:  "Day 8: Detaché/Tone + String Crossings (Week 2)",
		Warmup: "Open strings → Finger tapping → Schradieck Ex. 2 → Simple 1st-3rd shifts",
		Scales: "Open string group - Review with focus on tone quality",
		BlockA: []string{
			"Dont Op. 37 #1 - Sustained bow control",
			"Kreutzer #9 - String crossings with smooth connections",
			"Rode #1 - Long bow strokes",
		},
		BlockB: []string{
			"Sevcik Op. 3 - Different variations than Day 1",
			"Mazas Op. 36 Book 1, #1 - String crossing with melody",
		},
		Repertoire: "Bruch: Main theme (after intro), singing tone and legato",
	},
	{
		Title:  "Day 9: Shifting + Intonation (Week 2)",
		Warmup: "Open strings → Finger tapping → Schradieck Ex. 3 → Simple 1st-5th shifts",
		Scales: "First finger group - Review with attention to intonation",
		BlockA: []string{
			"Kreutzer #10 - Shifting study",
			"Mazas Op. 36 Book 2, #1 - Scale study with shifts",
			"Rode #8 - Position work",
		},
		BlockB: []string{
			"Sevcik Op. 8 - Different shifting patterns",
			"Current scale in all positions on one string",
		},
		Repertoire: "Bruch: Development section, map out position changes",
	},
	{
		Title:  "Day 10: Martelé/Articulation (Week 2)",
		Warmup: "Open strings → Finger tapping → Schradieck Ex. 1 → Simple 1st-3rd shifts",
		Scales: "Second finger group - Review with varied articulations",
		BlockA: []string{
			"Kreutzer #7 - Varied bow strokes",
			"Dont Op. 37 #9 - Mixed articulation",
			"Mazas Op. 36 Book 1, #5 - Staccato",
		},
		BlockB: []string{
			"Sevcik Op. 3 - Different stroke variations",
			"Rode #2 - Detaché and martelé mixed",
		},
		Repertoire: "Bach D minor: Courante or Gigue, rhythmic clarity",
	},
	{
		Title:  "Day 11: Double Stops + Left Hand (Week 2)",
		Warmup: "Open strings → Finger tapping → Schradieck Ex. 2 → Simple 1st-3rd shifts",
		Scales: "Third finger group - Review with double-stop focus",
		BlockA: []string{
			"Polo Double Stops - Sixths exercises",
			"Trott Melodious Double Stops #11-14 - Sixths",
			"Kreutzer #35 or #36 - Sixths studies",
		},
		BlockB: []string{
			"Whistler Developing Double Stops - Sixths section",
			"Mazas Op. 36 Book 2, #5 - Sixths",
		},
		Repertoire: "Bach D minor: Double-stop sections, slow with tuner",
	},
	{
		Title:  "Day 12: Spiccato/Off-String (Week 2)",
		Warmup: "Open strings → Finger tapping → Schradieck Ex. 3 → Simple 1st-3rd shifts",
		Scales: "Open string group - With spiccato bowing",
		BlockA: []string{
			"Dont Op. 37 #5 - Velocity with off-string bowing",
			"Rode #10 - Spiccato étude",
			"Mazas Op. 36 Book 1, #15 - Agility study",
		},
		BlockB: []string{
			"Kreutzer #11 - Tempo building with light bow",
			"Scales Plus! with spiccato bowing",
		},
		Repertoire: "Bruch: Fast passage work, building speed gradually",
	},
	{
		Title:  "Day 13: Shifting (Higher/Chromatic) Week 2",
		Warmup: "Open strings → Finger tapping → Schradieck Ex. 1 → Simple 1st-7th shifts",
		Scales: "First finger group - Chromatic variations",
		BlockA: []string{
			"Kreutzer #14 or #15 - Extended position work",
			"Dont Op. 37 #12 - Chromatic study",
			"Rode #9 - Higher positions",
		},
		BlockB: []string{
			"Sevcik Op. 8 - Different chromatic/position patterns",
			"Mazas Op. 36 Book 2, #9 - Chromatic study",
		},
		Repertoire: "Highest/most chromatic passages, drill slowly",
	},
	{
		Title:  "Day 14: Double Stops (Mixed) Week 2",
		Warmup: "Open strings → Finger tapping → Schradieck Ex. 2 → Simple 1st-3rd shifts",
		Scales: "Second finger group - With double-stop patterns",
		BlockA: []string{
			"Kreutzer #34 - Mixed intervals",
			"Dont Op. 37 #17 - Double-stop étude",
			"Trott - Selection of mixed interval studies",
		},
		BlockB: []string{
			"Polo Double Stops - Mixed interval exercises",
			"Sevcik Op. 8 - Double-stop coordination",
		},
		Repertoire: "Run through all double-stops in current repertoire",
	},
}
