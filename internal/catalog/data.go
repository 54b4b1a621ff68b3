package catalog

var medications = []MedicationInfo{
	{
		Name:              "Ibuprofen",
		GenericName:       "Ibuprofen",
		BrandNames:        []string{"Advil", "Motrin", "Nuprin"},
		Dosages:           []string{"200mg", "400mg", "600mg", "800mg"},
		CommonFrequencies: []string{"every 6-8 hours", "twice daily", "three times daily"},
		Category:          "Pain Relief/Anti-inflammatory",
		RequiresFood:      true,
		CommonSideEffects: []string{"Stomach upset", "Nausea", "Dizziness"},
		Description:       "Non-steroidal anti-inflammatory drug (NSAID) for pain and inflammation",
		Shape:             "round",
		Colors:            []string{"white", "orange", "brown"},
	},
	{
		Name:              "Acetaminophen",
		GenericName:       "Acetaminophen",
		BrandNames:        []string{"Tylenol", "Panadol"},
		Dosages:           []string{"325mg", "500mg", "650mg"},
		CommonFrequencies: []string{"every 4-6 hours", "three times daily", "four times daily"},
		Category:          "Pain Relief/Fever Reducer",
		EmptyStomach:      true,
		CommonSideEffects: []string{"Rare when used as directed"},
		Description:       "Pain reliever and fever reducer",
		Shape:             "round",
		Colors:            []string{"white", "red"},
	},
	{
		Name:              "Lisinopril",
		GenericName:       "Lisinopril",
		BrandNames:        []string{"Prinivil", "Zestril"},
		Dosages:           []string{"2.5mg", "5mg", "10mg", "20mg", "40mg"},
		CommonFrequencies: []string{"once daily"},
		Category:          "Blood Pressure",
		EmptyStomach:      true,
		CommonSideEffects: []string{"Dry cough", "Dizziness", "Fatigue"},
		Description:       "ACE inhibitor for high blood pressure and heart conditions",
		Shape:             "round",
		Colors:            []string{"white", "pink", "yellow"},
	},
	{
		Name:              "Amlodipine",
		GenericName:       "Amlodipine",
		BrandNames:        []string{"Norvasc"},
		Dosages:           []string{"2.5mg", "5mg", "10mg"},
		CommonFrequencies: []string{"once daily"},
		Category:          "Blood Pressure",
		EmptyStomach:      true,
		CommonSideEffects: []string{"Swelling", "Dizziness", "Flushing"},
		Description:       "Calcium channel blocker for high blood pressure",
		Shape:             "round",
		Colors:            []string{"white", "blue"},
	},
	{
		Name:              "Metformin",
		GenericName:       "Metformin",
		BrandNames:        []string{"Glucophage", "Fortamet"},
		Dosages:           []string{"500mg", "750mg", "850mg", "1000mg"},
		CommonFrequencies: []string{"twice daily", "three times daily"},
		Category:          "Diabetes",
		RequiresFood:      true,
		CommonSideEffects: []string{"Nausea", "Diarrhea", "Stomach upset"},
		Description:       "Medication for type 2 diabetes",
		Shape:             "oval",
		Colors:            []string{"white"},
	},
	{
		Name:              "Atorvastatin",
		GenericName:       "Atorvastatin",
		BrandNames:        []string{"Lipitor"},
		Dosages:           []string{"10mg", "20mg", "40mg", "80mg"},
		CommonFrequencies: []string{"once daily"},
		Category:          "Cholesterol",
		EmptyStomach:      true,
		CommonSideEffects: []string{"Muscle pain", "Headache", "Nausea"},
		Description:       "Statin medication to lower cholesterol",
		Shape:             "oval",
		Colors:            []string{"white", "blue"},
	},
	{
		Name:              "Simvastatin",
		GenericName:       "Simvastatin",
		BrandNames:        []string{"Zocor"},
		Dosages:           []string{"5mg", "10mg", "20mg", "40mg", "80mg"},
		CommonFrequencies: []string{"once daily in evening"},
		Category:          "Cholesterol",
		EmptyStomach:      true,
		CommonSideEffects: []string{"Muscle pain", "Headache", "Stomach upset"},
		Description:       "Statin medication to lower cholesterol",
		Shape:             "round",
		Colors:            []string{"tan", "pink", "red"},
	},
	{
		Name:              "Aspirin",
		GenericName:       "Aspirin",
		BrandNames:        []string{"Bayer", "Bufferin"},
		Dosages:           []string{"81mg", "325mg"},
		CommonFrequencies: []string{"once daily"},
		Category:          "Heart Health/Pain Relief",
		RequiresFood:      true,
		CommonSideEffects: []string{"Stomach irritation", "Bleeding risk"},
		Description:       "Low-dose for heart protection, higher doses for pain relief",
		Shape:             "round",
		Colors:            []string{"white"},
	},
	{
		Name:              "Sertraline",
		GenericName:       "Sertraline",
		BrandNames:        []string{"Zoloft"},
		Dosages:           []string{"25mg", "50mg", "100mg"},
		CommonFrequencies: []string{"once daily"},
		Category:          "Antidepressant",
		EmptyStomach:      true,
		CommonSideEffects: []string{"Nausea", "Dizziness", "Sleep changes"},
		Description:       "SSRI antidepressant for depression and anxiety",
		Shape:             "oval",
		Colors:            []string{"blue", "yellow"},
	},
	{
		Name:              "Lorazepam",
		GenericName:       "Lorazepam",
		BrandNames:        []string{"Ativan"},
		Dosages:           []string{"0.5mg", "1mg", "2mg"},
		CommonFrequencies: []string{"as needed", "twice daily", "three times daily"},
		Category:          "Anxiety",
		EmptyStomach:      true,
		CommonSideEffects: []string{"Drowsiness", "Dizziness", "Confusion"},
		Description:       "Benzodiazepine for anxiety and panic disorders",
		Shape:             "round",
		Colors:            []string{"white"},
	},
	{
		Name:              "Levothyroxine",
		GenericName:       "Levothyroxine",
		BrandNames:        []string{"Synthroid", "Levoxyl"},
		Dosages:           []string{"25mcg", "50mcg", "75mcg", "100mcg", "125mcg", "150mcg"},
		CommonFrequencies: []string{"once daily in morning"},
		Category:          "Thyroid",
		EmptyStomach:      true,
		CommonSideEffects: []string{"Heart palpitations", "Nervousness", "Weight loss"},
		Description:       "Synthetic thyroid hormone replacement",
		Shape:             "round",
		Colors:            []string{"orange", "white", "purple", "yellow", "pink"},
	},
	{
		Name:              "Amoxicillin",
		GenericName:       "Amoxicillin",
		BrandNames:        []string{"Amoxil"},
		Dosages:           []string{"250mg", "500mg", "875mg"},
		CommonFrequencies: []string{"twice daily", "three times daily"},
		Category:          "Antibiotic",
		EmptyStomach:      true,
		CommonSideEffects: []string{"Diarrhea", "Nausea", "Rash"},
		Description:       "Penicillin antibiotic for bacterial infections",
		Shape:             "capsule",
		Colors:            []string{"pink", "white"},
	},
	{
		Name:              "Omeprazole",
		GenericName:       "Omeprazole",
		BrandNames:        []string{"Prilosec"},
		Dosages:           []string{"10mg", "20mg", "40mg"},
		CommonFrequencies: []string{"once daily before breakfast"},
		Category:          "Acid Reflux",
		EmptyStomach:      true,
		CommonSideEffects: []string{"Headache", "Stomach pain", "Diarrhea"},
		Description:       "Proton pump inhibitor for acid reflux and ulcers",
		Shape:             "capsule",
		Colors:            []string{"purple", "pink"},
	},
	{
		Name:              "Cetirizine",
		GenericName:       "Cetirizine",
		BrandNames:        []string{"Zyrtec"},
		Dosages:           []string{"5mg", "10mg"},
		CommonFrequencies: []string{"once daily"},
		Category:          "Allergy",
		EmptyStomach:      true,
		CommonSideEffects: []string{"Drowsiness", "Dry mouth", "Fatigue"},
		Description:       "Antihistamine for allergies",
		Shape:             "round",
		Colors:            []string{"white"},
	},
	{
		Name:              "Loratadine",
		GenericName:       "Loratadine",
		BrandNames:        []string{"Claritin"},
		Dosages:           []string{"10mg"},
		CommonFrequencies: []string{"once daily"},
		Category:          "Allergy",
		EmptyStomach:      true,
		CommonSideEffects: []string{"Headache", "Fatigue", "Dry mouth"},
		Description:       "Non-drowsy antihistamine for allergies",
		Shape:             "round",
		Colors:            []string{"white"},
	},
	{
		Name:              "Zolpidem",
		GenericName:       "Zolpidem",
		BrandNames:        []string{"Ambien"},
		Dosages:           []string{"5mg", "10mg"},
		CommonFrequencies: []string{"once daily at bedtime"},
		Category:          "Sleep Aid",
		EmptyStomach:      true,
		CommonSideEffects: []string{"Drowsiness", "Dizziness", "Memory problems"},
		Description:       "Sleep medication for insomnia",
		Shape:             "round",
		Colors:            []string{"white", "pink"},
	},
}
