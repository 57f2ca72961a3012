package catalog

import "sync"

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the built-in credit risk career catalog. It is built once
// and shared; a seed that fails validation is a programming error and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := NewDefault()
		if err != nil {
			panic("catalog: invalid seed: " + err.Error())
		}
		defaultCat = c
	})
	return defaultCat
}

func seedQuestions() []Question {
	return []Question{
		// Psychometric
		{ID: "psych1", Text: "I enjoy analyzing complex data to identify patterns and trends.", Kind: KindLikert, Section: SectionPsychometric, Category: "analytical_interest", Weight: 1.2},
		{ID: "psych2", Text: "I prefer working with structured processes and clear guidelines.", Kind: KindLikert, Section: SectionPsychometric, Category: "structure_preference", Weight: 1.1},
		{ID: "psych3", Text: "I am comfortable making decisions with incomplete information.", Kind: KindLikert, Section: SectionPsychometric, Category: "risk_tolerance", Weight: 1.3},
		{ID: "psych4", Text: "I pay close attention to details and rarely make careless errors.", Kind: KindLikert, Section: SectionPsychometric, Category: "attention_to_detail", Weight: 1.4},
		{ID: "psych5", Text: "I enjoy communicating complex findings to different stakeholders.", Kind: KindLikert, Section: SectionPsychometric, Category: "communication", Weight: 1.0},
		{ID: "psych6", Text: "When facing setbacks, I persist and find alternative approaches.", Kind: KindLikert, Section: SectionPsychometric, Category: "resilience", Weight: 1.2},
		{ID: "psych7", Text: "I am naturally cautious and prefer to minimize risks.", Kind: KindLikert, Section: SectionPsychometric, Category: "risk_aversion", Weight: 1.1},
		{ID: "psych8", Text: "I find satisfaction in preventing problems before they occur.", Kind: KindLikert, Section: SectionPsychometric, Category: "preventive_mindset", Weight: 1.2},

		// Technical
		{
			ID:   "tech1",
			Text: "What is the primary purpose of a credit risk model?",
			Kind: KindMultipleChoice,
			Options: []string{
				"To maximize lending profits",
				"To predict the probability of default",
				"To set interest rates",
				"To approve all loan applications",
			},
			Section: SectionTechnical, Category: "basic_concepts", Weight: 1.0,
		},
		{
			ID:   "tech2",
			Text: "If a borrower has a credit score of 720, what does this typically indicate?",
			Kind: KindMultipleChoice,
			Options: []string{
				"High risk of default",
				"Average creditworthiness",
				"Good creditworthiness",
				"Insufficient information to assess",
			},
			Section: SectionTechnical, Category: "credit_scoring", Weight: 1.1,
		},
		{
			ID:      "tech3",
			Text:    "Calculate: If a portfolio has 1000 loans and the expected default rate is 3%, how many defaults are expected?",
			Kind:    KindMultipleChoice,
			Options: []string{"3", "30", "300", "3000"},
			Section: SectionTechnical, Category: "basic_math", Weight: 1.2,
		},
		{
			ID:   "tech4",
			Text: `What does "Loss Given Default (LGD)" represent?`,
			Kind: KindMultipleChoice,
			Options: []string{
				"The probability a borrower will default",
				"The percentage of exposure lost if default occurs",
				"The total amount lent to a borrower",
				"The interest rate charged to risky borrowers",
			},
			Section: SectionTechnical, Category: "risk_metrics", Weight: 1.3,
		},
		{
			ID:   "tech5",
			Text: "Which factor would MOST likely increase credit risk?",
			Kind: KindMultipleChoice,
			Options: []string{
				"Stable employment history",
				"High debt-to-income ratio",
				"Diversified income sources",
				"Strong cash reserves",
			},
			Section: SectionTechnical, Category: "risk_factors", Weight: 1.1,
		},
		{
			ID:   "tech6",
			Text: "In credit risk management, what is stress testing used for?",
			Kind: KindMultipleChoice,
			Options: []string{
				"Testing computer systems",
				"Evaluating performance under adverse conditions",
				"Training new employees",
				"Calculating daily profits",
			},
			Section: SectionTechnical, Category: "risk_management", Weight: 1.2,
		},

		// WISCAR
		{ID: "will1", Text: "I am committed to developing expertise in financial risk analysis over the next 3-5 years.", Kind: KindLikert, Section: SectionWiscar, Category: "will", Weight: 1.0},
		{ID: "will2", Text: "I would continue studying credit risk concepts even if the learning becomes challenging.", Kind: KindLikert, Section: SectionWiscar, Category: "will", Weight: 1.1},
		{ID: "interest1", Text: "I actively seek out articles and news about financial markets and banking.", Kind: KindLikert, Section: SectionWiscar, Category: "interest", Weight: 1.0},
		{ID: "interest2", Text: "I find the concept of predicting financial outcomes intellectually stimulating.", Kind: KindLikert, Section: SectionWiscar, Category: "interest", Weight: 1.1},
		{ID: "skill1", Text: "I am comfortable using spreadsheet software for data analysis.", Kind: KindLikert, Section: SectionWiscar, Category: "skill", Weight: 1.0},
		{ID: "skill2", Text: "I have experience with statistical concepts like probability and correlation.", Kind: KindLikert, Section: SectionWiscar, Category: "skill", Weight: 1.2},
		{ID: "cognitive1", Text: "I can effectively break down complex problems into manageable parts.", Kind: KindLikert, Section: SectionWiscar, Category: "cognitive", Weight: 1.1},
		{ID: "cognitive2", Text: "I enjoy puzzles and logical reasoning challenges.", Kind: KindLikert, Section: SectionWiscar, Category: "cognitive", Weight: 1.0},
		{ID: "ability1", Text: "I actively seek feedback to improve my performance.", Kind: KindLikert, Section: SectionWiscar, Category: "ability", Weight: 1.0},
		{ID: "ability2", Text: "I adapt quickly to new tools and methodologies.", Kind: KindLikert, Section: SectionWiscar, Category: "ability", Weight: 1.1},
		{
			ID:   "realworld1",
			Text: "You discover a potential error in a risk model that could affect lending decisions. What do you do?",
			Kind: KindScenario,
			Options: []string{
				"Immediately report it to your supervisor",
				"Investigate further to confirm before reporting",
				"Discuss with colleagues first",
				"Wait to see if others notice it",
			},
			Section: SectionWiscar, Category: "realWorld", Weight: 1.3,
		},
		{
			ID:   "realworld2",
			Text: "A business unit requests a risk assessment with an unrealistic deadline. How do you respond?",
			Kind: KindScenario,
			Options: []string{
				"Accept the deadline and work overtime",
				"Explain the risks of rushing and negotiate timeline",
				"Delegate to junior staff",
				"Provide a preliminary assessment only",
			},
			Section: SectionWiscar, Category: "realWorld", Weight: 1.2,
		},
	}
}

func seedAnswerKey() map[string]string {
	return map[string]string{
		"tech1": "To predict the probability of default",
		"tech2": "Good creditworthiness",
		"tech3": "30",
		"tech4": "The percentage of exposure lost if default occurs",
		"tech5": "High debt-to-income ratio",
		"tech6": "Evaluating performance under adverse conditions",
	}
}

func seedScenarioTables() map[string]map[string]int {
	return map[string]map[string]int{
		"realworld1": {
			"Immediately report it to your supervisor":        85,
			"Investigate further to confirm before reporting": 100,
			"Discuss with colleagues first":                   60,
			"Wait to see if others notice it":                 20,
		},
		"realworld2": {
			"Accept the deadline and work overtime":               40,
			"Explain the risks of rushing and negotiate timeline": 100,
			"Delegate to junior staff":                            30,
			"Provide a preliminary assessment only":               70,
		},
	}
}
