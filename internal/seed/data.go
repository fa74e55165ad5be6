package seed

// Synthetic data pools. Everything here is fabricated for training use.

var firstNames = []string{
	"Adrian", "Bianca", "Caleb", "Daphne", "Elias", "Farah", "Gavin", "Helena", "Iris", "Jonah",
	"Keira", "Liam", "Maya", "Nolan", "Olivia", "Priya", "Quentin", "Raina", "Soren", "Talia",
	"Uriah", "Valeria", "Wesley", "Ximena", "Yusuf", "Zara", "Amir", "Brielle", "Carmen", "Dario",
	"Elena", "Felix", "Gianna", "Hector", "Ismael", "Jocelyn", "Khalil", "Leona", "Mateo", "Noelle",
	"Omar", "Penelope", "Rafael", "Selene", "Tomas", "Uma", "Violet", "Wyatt", "Xander", "Yara",
	"Zane", "Aisha", "Brandon", "Cassidy", "Declan", "Esme", "Franco", "Greta", "Hannah", "Imani",
	"Jasper", "Kendall", "Logan", "Marisol", "Naomi", "Orion", "Paola", "Reed", "Sabrina", "Tristan",
	"Ulysses", "Veronica", "Willa", "Xavier", "Yvette", "Zion", "Anya", "Bennett", "Colette", "Dominic",
	"Emerson", "Fiona", "Grant", "Harper", "Indira", "Julian", "Kara", "Lucia", "Micah", "Nia",
	"Owen", "Parker", "Rosa", "Samir", "Teagan", "Ulani", "Vivian", "Winter", "Xiavier", "Yesenia",
}

var lastNames = []string{
	"Alden", "Barrett", "Caldwell", "Delacroix", "Eastman", "Fairchild", "Gallagher", "Hargrove", "Iverson", "Jamison",
	"Kensington", "Langford", "Montgomery", "Nightingale", "Oakley", "Prescott", "Quill", "Rutherford", "Sinclair", "Thatcher",
	"Underwood", "Vandermeer", "Whitaker", "Xu", "Youngblood", "Zimmerman", "Archer", "Bramwell", "Corwin", "Donovan",
	"Ellington", "Fitzpatrick", "Grantham", "Hollister", "Ingram", "Kaufman", "Llewellyn", "Merriweather", "Northcott", "O'Shea",
	"Pereira", "Quintero", "Rosenfeld", "Santiago", "Treadwell", "Ulrich", "Valentine", "Winslow", "Xiong", "Yamamoto",
	"Zabinski", "Atwood", "Beaumont", "Callahan", "Davenport", "Everhart", "Farnsworth", "Gaines", "Hendrix", "Iannone",
	"Jefferson", "Kline", "Laramie", "Moreau", "Nakamura", "Olivetti", "Pemberton", "Quade", "Ramos", "Sheffield",
	"Templeton", "Usher", "Vasquez", "Wainwright", "Xue", "Yeats", "Zuniga", "Ashford", "Bancroft", "Carmichael",
	"Driscoll", "Echeverria", "Feldman", "Goodwin", "Harrington", "Iskander", "Johansson", "Kendrick", "Leopold", "Marquez",
	"Novak", "Okafor", "Parsons", "Quinlan", "Redmond", "Sawyer", "Townsend", "Upton", "Villarreal", "Westbrook",
}

type referringPhysician struct {
	Name  string
	Phone string
}

var referringPhysicians = []referringPhysician{
	{"Morgan Fields, MD", "555-0101"},
	{"Casey Patel, DO", "555-0102"},
	{"Renee Alvarez, MD", "555-0103"},
	{"Samuel Brooks, MD", "555-0104"},
	{"Ivy Chen, MD", "555-0105"},
	{"Noah Bennett, DO", "555-0106"},
	{"Amina Hassan, MD", "555-0107"},
	{"Peter Nguyen, MD", "555-0108"},
	{"Elisa Romero, MD", "555-0109"},
	{"Dylan Price, DO", "555-0110"},
}

type insurancePlan struct {
	Payer string
	Plan  string
	Type  string
}

var insurancePlans = []insurancePlan{
	{"Medicare", "Medicare Part B", "Medicare"},
	{"UnitedHealthcare", "Choice Plus PPO", "Commercial"},
	{"Blue Cross Blue Shield", "PPO BlueOptions", "Commercial"},
	{"Aetna", "Open Access Managed Choice", "Commercial"},
	{"Cigna", "Connect Network", "Commercial"},
	{"Humana", "Gold Plus HMO", "Commercial"},
	{"Tricare", "Tricare Prime", "Tricare"},
	{"Medicaid", "State Medicaid", "Medicaid"},
}

// caseTemplate drives the chart content for one synthetic diagnosis.
type caseTemplate struct {
	Title       string
	MedicalDx   string
	TreatmentDx string
	Precautions string
	Contra      string
	// Outcome instrument and a plausible baseline score.
	Outcome      string
	OutcomeScore int
	CPTPlan      []string
	STG          []string
	LTG          []string
}

var serviceLines = []string{"Orthopedic", "Neurological", "Geriatric", "Sports", "Pediatrics", "Vestibular", "Pelvic Health"}

var caseTemplates = map[string][]caseTemplate{
	"Orthopedic": {
		{
			Title:        "Lumbar radiculopathy",
			MedicalDx:    "M54.16 - Radiculopathy, lumbar region",
			TreatmentDx:  "M62.81 - Muscle weakness (generalized); R26.2 - Difficulty in walking; M54.50 - Low back pain",
			Precautions:  "prec: monitor s/s neuro changes; avoid provocative positions early; progress as tol.",
			Contra:       "contra: red flag s/s (bowel/bladder changes, saddle anesthesia) -> refer.",
			Outcome:      "Oswestry",
			OutcomeScore: 28,
			CPTPlan:      []string{"97110", "97112", "97530", "97140", "97535"},
			STG:          []string{"Reduce pain to <=4/10 with sitting >30 min", "Demonstrate correct lumbar neutral during ADLs"},
			LTG:          []string{"Return to work full duty without symptom flare", "Independent with progressed HEP"},
		},
		{
			Title:        "s/p total knee arthroplasty",
			MedicalDx:    "Z96.651 - Presence of right artificial knee joint",
			TreatmentDx:  "M25.561 - Pain in right knee; M62.81 - Muscle weakness; R26.2 - Difficulty in walking",
			Precautions:  "prec: WBAT per surgeon; monitor incision; DVT s/s screen each visit.",
			Contra:       "contra: s/s DVT/PE (calf pain, swelling, SOB) -> urgent referral.",
			Outcome:      "LEFS",
			OutcomeScore: 30,
			CPTPlan:      []string{"97110", "97140", "97116", "97530"},
			STG:          []string{"Knee flexion AROM to 110 deg", "Ambulate 300 ft with single point cane"},
			LTG:          []string{"Independent community ambulation without device", "Stairs reciprocally with rail"},
		},
	},
	"Neurological": {
		{
			Title:        "CVA with left hemiparesis",
			MedicalDx:    "I69.354 - Hemiplegia following cerebral infarction affecting left non-dominant side",
			TreatmentDx:  "R26.2 - Difficulty in walking; M62.81 - Muscle weakness; R29.6 - Repeated falls",
			Precautions:  "prec: fall risk; monitor BP and RPE; guard during transfers and gait.",
			Contra:       "contra: new neuro deficit or s/s recurrent CVA -> emergency referral.",
			Outcome:      "Berg",
			OutcomeScore: 38,
			CPTPlan:      []string{"97112", "97116", "97530", "97110"},
			STG:          []string{"Sit-to-stand with supervision x5", "Ambulate 150 ft with hemi-walker, min assist"},
			LTG:          []string{"Household ambulation with supervision", "Berg >=45/56 indicating reduced fall risk"},
		},
	},
	"Geriatric": {
		{
			Title:        "Deconditioning with fall risk",
			MedicalDx:    "R29.6 - Repeated falls; M62.81 - Muscle weakness",
			TreatmentDx:  "R26.89 - Other abnormalities of gait and mobility; R53.1 - Weakness",
			Precautions:  "prec: fall risk; orthostatic hypotension screen; pace activity with rest breaks.",
			Contra:       "contra: chest pain, unstable angina s/s -> hold treatment and refer.",
			Outcome:      "TUG",
			OutcomeScore: 18,
			CPTPlan:      []string{"97110", "97112", "97116", "97530"},
			STG:          []string{"TUG <16 s with RW", "Stand without UE support x30 s"},
			LTG:          []string{"Independent household ambulation with RW", "TUG <13.5 s indicating reduced fall risk"},
		},
	},
	"Sports": {
		{
			Title:        "s/p ACL reconstruction",
			MedicalDx:    "Z98.890 - Other specified postprocedural states; s/p ACLR right knee",
			TreatmentDx:  "M25.561 - Pain in right knee; M62.81 - Muscle weakness",
			Precautions:  "prec: follow post-op protocol phases; no open chain knee ext loading early phase.",
			Contra:       "contra: s/s infection at portal sites; graft instability -> surgeon referral.",
			Outcome:      "LEFS",
			OutcomeScore: 42,
			CPTPlan:      []string{"97110", "97112", "97530", "97116"},
			STG:          []string{"Quad set with superior patellar glide, strong contraction", "Full knee extension PROM"},
			LTG:          []string{"Return to sport-specific drills per protocol", "Single leg hop test >=90% limb symmetry"},
		},
	},
	"Pediatrics": {
		{
			Title:        "Developmental coordination disorder",
			MedicalDx:    "F82 - Specific developmental disorder of motor function",
			TreatmentDx:  "R26.89 - Other abnormalities of gait and mobility; R27.8 - Other lack of coordination",
			Precautions:  "prec: age-appropriate activity dosing; caregiver present for carryover training.",
			Contra:       "contra: unexplained regression of milestones -> physician referral.",
			Outcome:      "PedsQL",
			OutcomeScore: 62,
			CPTPlan:      []string{"97530", "97112", "97110"},
			STG:          []string{"Single leg stance 5 s each side", "Jump forward 12 in with two-foot takeoff and landing"},
			LTG:          []string{"Keep pace with peers in PE class activities", "Independent stair negotiation with reciprocal pattern"},
		},
	},
	"Vestibular": {
		{
			Title:        "BPPV, right posterior canal",
			MedicalDx:    "H81.11 - Benign paroxysmal vertigo, right ear",
			TreatmentDx:  "R42 - Dizziness and giddiness; R26.81 - Unsteadiness on feet",
			Precautions:  "prec: fall risk during provocation testing; supervise position changes.",
			Contra:       "contra: central s/s (diplopia, dysarthria, drop attacks) -> urgent referral.",
			Outcome:      "DHI",
			OutcomeScore: 48,
			CPTPlan:      []string{"95992", "97112", "97530"},
			STG:          []string{"Negative Dix-Hallpike right", "DHI improved by >=18 points"},
			LTG:          []string{"Return to driving without symptoms", "Independent symptom management strategies"},
		},
	},
	"Pelvic Health": {
		{
			Title:        "Stress urinary incontinence",
			MedicalDx:    "N39.3 - Stress incontinence (female) (male)",
			TreatmentDx:  "N39.3 - Stress incontinence; M62.81 - Muscle weakness (pelvic floor)",
			Precautions:  "prec: private treatment environment; chaperone per policy; symptom-guided dosing.",
			Contra:       "contra: s/s infection, unexplained bleeding -> physician referral.",
			Outcome:      "PFDI20",
			OutcomeScore: 96,
			CPTPlan:      []string{"97110", "97112", "97535"},
			STG:          []string{"Correct pelvic floor contraction with verbal cues", "Reduce leakage episodes to <=1/day"},
			LTG:          []string{"No leakage with cough/sneeze", "Independent with progression and self-management"},
		},
	},
}

var allergySubstances = []string{"Penicillin", "Sulfa drugs", "Latex", "Ibuprofen", "Adhesive tape", "Shellfish"}
var allergyReactions = []string{"Hives", "Rash", "Swelling", "Anaphylaxis", "GI upset"}
var allergySeverities = []string{"Mild", "Moderate", "Severe"}

type medTemplate struct {
	Name      string
	Dose      string
	Route     string
	Frequency string
}

var medTemplates = []medTemplate{
	{"Lisinopril", "10 mg", "PO", "daily"},
	{"Metformin", "500 mg", "PO", "BID"},
	{"Atorvastatin", "20 mg", "PO", "nightly"},
	{"Ibuprofen", "400 mg", "PO", "PRN"},
	{"Acetaminophen", "500 mg", "PO", "PRN"},
	{"Gabapentin", "300 mg", "PO", "TID"},
	{"Amlodipine", "5 mg", "PO", "daily"},
	{"Levothyroxine", "50 mcg", "PO", "daily"},
}
