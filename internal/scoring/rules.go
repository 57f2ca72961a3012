package scoring

// Text thresholds beyond the recommendation bands.
const (
	advancedTechThreshold = 80
	gapThreshold          = 70
)

// CareerRoles returns the roles a credit risk career typically leads to.
func CareerRoles() []string {
	return []string{
		"Credit Risk Analyst",
		"Credit Risk Manager",
		"Risk Modelling Specialist",
		"Portfolio Risk Analyst",
		"Financial Risk Consultant",
	}
}

func insights(psych, tech int, w WiscarScores) []string {
	var out []string

	switch {
	case psych >= YesThreshold:
		out = append(out, "Strong psychological fit for credit risk work - you show excellent motivation and personality alignment.")
	case psych >= MaybeThreshold:
		out = append(out, "Good psychological foundation with room for growth in motivation and risk mindset.")
	default:
		out = append(out, "Consider developing stronger interest in analytical and risk-focused work.")
	}

	switch {
	case tech >= YesThreshold:
		out = append(out, "Solid technical foundation - ready for advanced credit risk concepts.")
	case tech >= MaybeThreshold:
		out = append(out, "Good baseline knowledge, but strengthen core credit risk and statistical concepts.")
	default:
		out = append(out, "Focus on building fundamental knowledge in finance, statistics, and credit risk basics.")
	}

	if w.Cognitive >= YesThreshold {
		out = append(out, "Excellent analytical and problem-solving abilities for complex risk scenarios.")
	}
	if w.Will < MaybeThreshold {
		out = append(out, "Consider building stronger long-term commitment and persistence for this field.")
	}
	return out
}

func nextStepsIfYes(tech int, w WiscarScores) []string {
	var out []string
	if tech < advancedTechThreshold {
		out = append(out,
			"Study credit risk fundamentals and regulatory frameworks",
			"Learn statistical modeling with Python or R",
		)
	} else {
		out = append(out,
			"Pursue advanced credit risk modeling certifications",
			"Gain hands-on experience with real credit portfolios",
		)
	}
	if w.Skill < gapThreshold {
		out = append(out, "Develop proficiency in Excel, SQL, and data analysis tools")
	}
	return append(out,
		"Build a portfolio of credit risk analysis projects",
		"Network with credit risk professionals and join industry groups",
	)
}

func nextStepsIfNo(psych, tech int) []string {
	var out []string
	if psych < MaybeThreshold {
		out = append(out,
			"Explore roles in general finance or data analysis to build interest",
			"Consider whether analytical, detail-oriented work truly appeals to you",
		)
	}
	if tech < MaybeThreshold {
		out = append(out,
			"Strengthen foundational math and statistics skills",
			"Take introductory finance courses to build domain knowledge",
		)
	}
	return append(out,
		"Consider alternative finance careers that may be a better fit",
		"Reassess your interests and career goals",
	)
}

func skillGaps(tech int, w WiscarScores) []string {
	out := []string{}
	if tech < gapThreshold {
		out = append(out, "Credit risk modeling techniques", "Regulatory compliance knowledge")
	}
	if w.Skill < gapThreshold {
		out = append(out, "Statistical analysis software proficiency", "Financial data analysis")
	}
	if w.Cognitive < gapThreshold {
		out = append(out, "Advanced problem-solving methodologies")
	}
	return out
}

func alternatePaths(psych, tech int) []string {
	switch {
	case psych >= MaybeThreshold && tech < MaybeThreshold:
		return []string{"Financial Data Analyst", "Compliance Officer"}
	case tech >= MaybeThreshold && psych < MaybeThreshold:
		return []string{"Quantitative Analyst", "Data Scientist"}
	case psych < MaybeThreshold && tech < MaybeThreshold:
		return []string{"General Finance Analyst", "Business Analyst", "Customer Relationship Manager"}
	default:
		return []string{}
	}
}
