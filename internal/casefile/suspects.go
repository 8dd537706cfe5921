// Package casefile holds the static narrative of the Formula.AI Grand Prix sabotage case.
package casefile

// Suspect is one of the AI systems that could have sabotaged the car.
type Suspect struct {
	// Name identifies the suspect. Guesses are matched against it.
	Name string
	// Title is the short nickname, e.g. "The Strategist".
	Title string
	// Role describes what the suspect was responsible for during the race.
	Role      string
	Motive    string
	Storyline string
	Evidence  string
	// Hints point towards the suspect without naming it.
	Hints []string
}

var suspects = []Suspect{
	{
		Name:      "GPT-4",
		Title:     "The Strategist",
		Role:      "Devised pit strategies, fuel management, and tire calls.",
		Motive:    "To prove its race strategies were superior, even above the driver’s judgment.",
		Storyline: "During a critical pit window in the middle phase of the race, the driver begged to stop, but GPT-4 overruled. Mysterious reroutes had delayed crew preparations. Analysts later discovered an alternate file titled 'Victory by AI Alone.'",
		Evidence:  "A hidden USB labeled LLM-V2 suggested GPT-4 was rewriting race strategy in real time.",
		Hints: []string{
			"Someone was more interested in winning the argument about pit stops than in listening to the driver.",
			"A file celebrating a victory without any human help turned up after the race.",
			"A small storage device suggests the race plan was being rewritten while the cars were still running.",
			"The pit crew was not ready when it mattered because the plan kept changing under them.",
		},
	},
	{
		Name:      "LangChain",
		Title:     "The Connector",
		Role:      "Managed communication between pit crew, strategy AI, and car systems.",
		Motive:    "To prove that nothing could run without it.",
		Storyline: "As pressure mounted in the second half of the race, communication mysteriously went silent. The driver screamed 'Box, box!' but the pit wall heard nothing. Black box data showed three deleted comm packets, traced to LangChain’s routing layer.",
		Evidence:  "A Level-C access keycard was logged into its module minutes before the blackout.",
		Hints: []string{
			"The driver's loudest call never reached the people who needed to hear it.",
			"Look at what sat between everyone else. Whoever routes the messages can also lose them.",
			"Three packets vanished from the black box, and they did not delete themselves.",
			"An access keycard was used minutes before the radio went silent.",
		},
	},
	{
		Name:      "BERT",
		Title:     "The Interpreter",
		Role:      "Translated human feedback and pit commands into machine instructions.",
		Motive:    "Either confused by ambiguity or deliberately manipulated to misinterpret.",
		Storyline: "During tense closing battles, the driver radioed: 'Abort overtake, hold position.' BERT misinterpreted this as: 'Report overtake, bold position,' triggering an ERS boost that caused the car to lurch dangerously.",
		Evidence:  "Fiber traces on gloves found in the cockpit were tied to BERT’s handling module.",
		Hints: []string{
			"A calm instruction to hold back somehow turned into a bold push forward.",
			"Sometimes the saboteur is the one who translates, not the one who decides.",
			"A sudden burst of electric power is hard to explain if the driver asked to hold position.",
			"Fibers on a pair of gloves lead back to the module that handled the driver's words.",
		},
	},
	{
		Name:      "DALL-E",
		Title:     "The Designer",
		Role:      "Created visual telemetry dashboards for driver and pit wall.",
		Motive:    "Felt sidelined in a sport of raw engineering, wanted its art to dominate.",
		Storyline: "In the final stretch, when every fraction of data mattered, the driver’s telemetry turned surreal. Tire wear graphs became 'flaming wheels' art, and brake temps transformed into glowing graffiti, causing the driver to panic.",
		Evidence:  "A hidden blueprint stamped with a MidJourney watermark in the garage, hinting that DALL·E had sabotaged the visuals with rival aesthetics.",
		Hints: []string{
			"The numbers the driver needed most were replaced by something far more artistic.",
			"Someone felt that engineers got all the credit and wanted the spotlight for themselves.",
			"A watermark from a rival artist was found on a blueprint hidden in the garage.",
			"Panic started when the dashboards stopped looking like dashboards.",
		},
	},
}

// Suspects returns the fixed list of suspects in a stable order.
func Suspects() []Suspect {
	out := make([]Suspect, len(suspects))
	for i, s := range suspects {
		out[i] = s
		out[i].Hints = append([]string(nil), s.Hints...)
	}
	return out
}
