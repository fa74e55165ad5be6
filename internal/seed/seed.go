// Package seed generates the synthetic training caseload: a small provider
// cohort and a mixed outpatient panel with realistic documentation chains.
// All output is deterministic for a given seed value.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/ptalab/emr/internal/domain/billing"
	"github.com/ptalab/emr/internal/domain/encounter"
	"github.com/ptalab/emr/internal/domain/patient"
	"github.com/ptalab/emr/internal/domain/user"
	"github.com/ptalab/emr/internal/platform/auth"
)

// Options controls a seeding run.
type Options struct {
	Seed     int64
	Patients int
	// Force wipes existing data before seeding. Without it an already
	// populated database is left untouched.
	Force bool
}

type Seeder struct {
	pool       *pgxpool.Pool
	users      user.Repository
	patients   patient.Repository
	encounters encounter.Repository
	charges    billing.Repository
	logger     zerolog.Logger
}

func New(pool *pgxpool.Pool, logger zerolog.Logger) *Seeder {
	return &Seeder{
		pool:       pool,
		users:      user.NewRepo(pool),
		patients:   patient.NewRepo(pool),
		encounters: encounter.NewRepo(pool),
		charges:    billing.NewRepo(pool),
		logger:     logger,
	}
}

// Run populates the database. Existing data short-circuits the run unless
// Force is set, in which case everything is wiped first.
func (s *Seeder) Run(ctx context.Context, opts Options) error {
	if opts.Patients <= 0 {
		opts.Patients = 100
	}
	if opts.Patients > len(firstNames) {
		opts.Patients = len(firstNames)
	}

	existing, err := s.users.List(ctx)
	if err != nil {
		return fmt.Errorf("check existing data: %w", err)
	}
	if len(existing) > 0 {
		if !opts.Force {
			s.logger.Info().Msg("database already seeded; skipping")
			return nil
		}
		if err := s.wipe(ctx); err != nil {
			return fmt.Errorf("wipe: %w", err)
		}
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	providers, err := s.createUsers(ctx)
	if err != nil {
		return fmt.Errorf("create users: %w", err)
	}

	count, err := s.createCaseload(ctx, rng, providers, opts.Patients)
	if err != nil {
		return fmt.Errorf("create caseload: %w", err)
	}

	s.logger.Info().Int("patients", count).Int64("seed", opts.Seed).Msg("seed complete")
	return nil
}

func (s *Seeder) wipe(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		TRUNCATE audit_logs, charges, notes, encounters, appointments, orders,
		         problems, medications, allergies, patients, users`)
	return err
}

func (s *Seeder) createUsers(ctx context.Context) ([]*user.User, error) {
	type account struct {
		email, name, role, password string
		credentials, license        *string
	}
	str := func(v string) *string { return &v }

	accounts := []account{
		{"instructor@pta.local", "Alex Morgan", auth.RoleInstructor, "instructor123", str("PT, DPT"), str("PT12345")},
		{"student1@pta.local", "Jordan Lee", auth.RoleStudent, "student123", str("PTA-S"), nil},
		{"student2@pta.local", "Taylor Chen", auth.RoleStudent, "student123", str("PTA-S"), nil},
	}

	var users []*user.User
	for _, a := range accounts {
		hash, err := auth.HashPassword(a.password)
		if err != nil {
			return nil, err
		}
		u := &user.User{
			Email:         a.email,
			Name:          a.name,
			Role:          a.role,
			Credentials:   a.credentials,
			LicenseNumber: a.license,
			PasswordHash:  hash,
		}
		if err := s.users.Create(ctx, u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (s *Seeder) createCaseload(ctx context.Context, rng *rand.Rand, providers []*user.User, count int) (int, error) {
	firsts := append([]string(nil), firstNames...)
	lasts := append([]string(nil), lastNames...)
	rng.Shuffle(len(firsts), func(i, j int) { firsts[i], firsts[j] = firsts[j], firsts[i] })
	rng.Shuffle(len(lasts), func(i, j int) { lasts[i], lasts[j] = lasts[j], lasts[i] })

	now := time.Now().UTC()

	for i := 0; i < count; i++ {
		line := serviceLines[i%len(serviceLines)]
		templates := caseTemplates[line]
		tmpl := templates[rng.Intn(len(templates))]

		p := s.buildPatient(rng, i, firsts[i], lasts[i], line, tmpl, now)
		if err := s.patients.Create(ctx, p); err != nil {
			return i, err
		}
		if err := s.addChartLists(ctx, rng, p, providers, now); err != nil {
			return i, err
		}

		provider := providers[rng.Intn(len(providers))]
		if err := s.addEpisode(ctx, rng, p, provider, tmpl, now); err != nil {
			return i, err
		}
	}
	return count, nil
}

func (s *Seeder) buildPatient(rng *rand.Rand, i int, first, last, line string, tmpl caseTemplate, now time.Time) *patient.Patient {
	str := func(v string) *string { return &v }

	dob := randomDOB(rng, line, now)
	plan := insurancePlans[rng.Intn(len(insurancePlans))]
	phys := referringPhysicians[rng.Intn(len(referringPhysicians))]

	return &patient.Patient{
		MRN:                     fmt.Sprintf("MRN-%05d", 10001+i),
		AccountNumber:           fmt.Sprintf("ACCT-%06d", 700001+i),
		FirstName:               first,
		LastName:                last,
		DOB:                     dob,
		Sex:                     []string{"Female", "Male"}[rng.Intn(2)],
		Phone:                   str(fmt.Sprintf("555-%04d", 1000+i)),
		Email:                   str(fmt.Sprintf("%s.%s@example.test", first, last)),
		Address:                 str(fmt.Sprintf("%d Willow Lane", 100+i)),
		EmergencyContactName:    str("Family member"),
		EmergencyContactPhone:   str(fmt.Sprintf("555-%04d", 5000+i)),
		InsuranceType:           str(plan.Type),
		InsurancePayer:          str(plan.Payer),
		InsurancePlan:           str(plan.Plan),
		InsuranceMemberID:       str(fmt.Sprintf("MBR%08d", rng.Intn(100000000))),
		InsuranceGroup:          str(fmt.Sprintf("GRP%05d", rng.Intn(100000))),
		ReferringPhysician:      str(phys.Name),
		ReferringPhysicianPhone: str(phys.Phone),
		ServiceLine:             str(line),
		PrimaryDx:               str(tmpl.MedicalDx),
		TreatmentDx:             str(tmpl.TreatmentDx),
		Precautions:             str(tmpl.Precautions),
		Contraindications:       str(tmpl.Contra),
		CaseSummary:             str(fmt.Sprintf("%s case: %s. Referred for skilled PT.", line, tmpl.Title)),
	}
}

func randomDOB(rng *rand.Rand, line string, now time.Time) time.Time {
	var age int
	switch line {
	case "Pediatrics":
		age = 5 + rng.Intn(12)
	case "Geriatric":
		age = 70 + rng.Intn(21)
	default:
		age = 20 + rng.Intn(56)
	}
	return time.Date(now.Year()-age, time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC)
}

func (s *Seeder) addChartLists(ctx context.Context, rng *rand.Rand, p *patient.Patient, providers []*user.User, now time.Time) error {
	str := func(v string) *string { return &v }

	if rng.Float64() < 0.4 {
		a := &patient.Allergy{
			PatientID: p.ID,
			Substance: allergySubstances[rng.Intn(len(allergySubstances))],
			Reaction:  str(allergyReactions[rng.Intn(len(allergyReactions))]),
			Severity:  str(allergySeverities[rng.Intn(len(allergySeverities))]),
		}
		if err := s.patients.AddAllergy(ctx, a); err != nil {
			return err
		}
	}

	medCount := 1 + rng.Intn(3)
	if p.ServiceLine != nil && *p.ServiceLine == "Pediatrics" {
		medCount = 1
	}
	for j := 0; j < medCount; j++ {
		m := medTemplates[rng.Intn(len(medTemplates))]
		med := &patient.Medication{
			PatientID: p.ID,
			Name:      m.Name,
			Dose:      str(m.Dose),
			Route:     str(m.Route),
			Frequency: str(m.Frequency),
			Status:    "Active",
		}
		if err := s.patients.AddMedication(ctx, med); err != nil {
			return err
		}
	}

	if p.PrimaryDx != nil {
		prob := &patient.Problem{
			PatientID:   p.ID,
			Description: *p.PrimaryDx,
			Status:      "Active",
		}
		onset := now.AddDate(0, 0, -(30 + rng.Intn(90)))
		prob.OnsetDate = &onset
		if err := s.patients.AddProblem(ctx, prob); err != nil {
			return err
		}
	}

	order := &patient.Order{
		PatientID:   p.ID,
		OrderedAt:   now.AddDate(0, 0, -(14 + rng.Intn(30))),
		Description: "PT evaluate and treat",
		Status:      "Active",
	}
	if err := s.patients.AddOrder(ctx, order); err != nil {
		return err
	}

	appt := &patient.Appointment{
		PatientID:  p.ID,
		ProviderID: providers[rng.Intn(len(providers))].ID,
		StartAt:    now.AddDate(0, 0, 1+rng.Intn(14)).Truncate(time.Hour),
		Status:     "Scheduled",
	}
	appt.EndAt = appt.StartAt.Add(45 * time.Minute)
	loc := "Outpatient PT"
	appt.Location = &loc
	return s.patients.AddAppointment(ctx, appt)
}

// addEpisode writes the documentation chain for one patient: an evaluation
// for everyone, daily visits plus a progress report for established cases,
// and a discharge summary for a subset of those.
func (s *Seeder) addEpisode(ctx context.Context, rng *rand.Rand, p *patient.Patient, provider *user.User, tmpl caseTemplate, now time.Time) error {
	established := rng.Float64() < 0.7
	visitCount := 0
	if established {
		visitCount = 3 + rng.Intn(6)
	}

	startDate := now.AddDate(0, 0, -(7 + visitCount*3 + rng.Intn(14)))
	pain := 4 + rng.Intn(4)

	evalExtra := s.episodeExtra(p, provider, tmpl, startDate)
	evalNote := encounter.NewNote(encounter.TemplateEvaluation, evalExtra)
	evalNote.Subjective = fmt.Sprintf("Pt presents with %s. Reports pain %d/10 at worst, limiting daily function.", tmpl.Title, pain)
	evalNote.Objective = "Initial examination completed incl. ROM, strength, functional mobility, and standardized testing as below."
	evalNote.Assessment = fmt.Sprintf("Findings consistent with %s. Good rehab potential; skilled PT indicated.", tmpl.Title)
	evalNote.Plan = fmt.Sprintf("Initiate POC %s. %s", evalExtra.FrequencyDuration, "Progress per response; outcome retest at progress report.")
	evalNote.PainPre = &pain
	evalNote.Vitals = genVitals(rng)
	if tmpl.Outcome != "" {
		evalNote.Outcomes[tmpl.Outcome] = tmpl.OutcomeScore
	}

	signed := true
	if err := s.writeEncounter(ctx, rng, p, provider, encounter.TypeEvaluation, startDate, evalNote, []string{"97162"}, signed); err != nil {
		return err
	}

	if !established {
		return nil
	}

	for v := 0; v < visitCount; v++ {
		visitDate := startDate.AddDate(0, 0, (v+1)*3)
		visitPain := pain
		if drop := v / 2; drop < visitPain {
			visitPain -= drop
		}

		note := encounter.NewNote(encounter.TemplateDaily, s.carryExtra(evalExtra))
		note.Subjective = fmt.Sprintf("Pt reports pain %d/10 today; tolerating HEP without flare.", visitPain)
		note.Objective = "Treatment per flowsheet below; form and dosing monitored with cues as needed."
		note.Assessment = "Progressing toward goals; tolerated session well."
		note.Plan = "Continue POC; progress dosing next visit as tolerated."
		note.PainPre = &visitPain
		post := visitPain - 1
		if post < 0 {
			post = 0
		}
		note.PainPost = &post
		note.Vitals = genVitals(rng)

		if err := s.writeEncounter(ctx, rng, p, provider, encounter.TypeDaily, visitDate, note, pickCodes(rng, tmpl.CPTPlan, 2+rng.Intn(2)), true); err != nil {
			return err
		}
	}

	progressDate := startDate.AddDate(0, 0, (visitCount+1)*3)
	progExtra := s.carryExtra(evalExtra)
	progNote := encounter.NewNote(encounter.TemplateProgress, progExtra)
	progNote.Subjective = "Pt reports steady improvement in function and confidence with daily activities."
	progNote.Objective = "Outcome measures retested as below; strength and mobility gains noted vs initial exam."
	progNote.Assessment = "Measurable progress toward STG/LTG; continued skilled PT indicated."
	progNote.Plan = "Continue POC with progression; update goals as met."
	if tmpl.Outcome != "" {
		improved := tmpl.OutcomeScore - 8
		if tmpl.Outcome == "LEFS" || tmpl.Outcome == "Berg" || tmpl.Outcome == "PedsQL" {
			improved = tmpl.OutcomeScore + 8
		}
		progNote.Outcomes[tmpl.Outcome] = improved
	}
	progNote.Vitals = genVitals(rng)

	if err := s.writeEncounter(ctx, rng, p, provider, encounter.TypeProgress, progressDate, progNote, pickCodes(rng, tmpl.CPTPlan, 2), true); err != nil {
		return err
	}

	if rng.Float64() < 0.3 {
		dcDate := progressDate.AddDate(0, 0, 7)
		dcExtra := s.carryExtra(evalExtra)
		dcNote := encounter.NewNote(encounter.TemplateDischarge, dcExtra)
		dcNote.Subjective = "Pt reports readiness for discharge and independent self-management."
		dcNote.Objective = "Final measures recorded; goals reviewed against initial examination."
		dcNote.Assessment = "Goals substantially met; pt independent with progressed HEP."
		dcNote.Plan = "Discharge to HEP; f/u with referring phys PRN; return precautions reviewed."
		if err := s.writeEncounter(ctx, rng, p, provider, encounter.TypeDischarge, dcDate, dcNote, []string{"97164"}, true); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) episodeExtra(p *patient.Patient, provider *user.User, tmpl caseTemplate, date time.Time) encounter.NoteExtra {
	dc := encounter.DefaultNoteContext{
		ProviderSignature: provider.SignatureLine(),
	}
	if p.Contraindications != nil {
		dc.Contraindications = *p.Contraindications
	}
	if p.Precautions != nil {
		dc.Precautions = *p.Precautions
	}

	extra := encounter.DefaultExtra(encounter.TemplateEvaluation, dc, nil, date)
	extra.MedicalDx = tmpl.MedicalDx
	extra.TreatmentDx = tmpl.TreatmentDx
	extra.RequiredCPT = append([]string(nil), tmpl.CPTPlan...)
	extra.STG = goalRows(tmpl.STG, date.AddDate(0, 0, 21))
	extra.LTG = goalRows(tmpl.LTG, date.AddDate(0, 0, 42))
	return extra
}

// carryExtra simulates the plan-of-care fields flowing into follow-up notes.
func (s *Seeder) carryExtra(eval encounter.NoteExtra) encounter.NoteExtra {
	cp := eval
	cp.STG = append([]encounter.Goal(nil), eval.STG...)
	cp.LTG = append([]encounter.Goal(nil), eval.LTG...)
	cp.RequiredCPT = append([]string(nil), eval.RequiredCPT...)
	return cp
}

func goalRows(texts []string, target time.Time) []encounter.Goal {
	var goals []encounter.Goal
	for _, t := range texts {
		goals = append(goals, encounter.Goal{
			Text:       t,
			TargetDate: target.Format("2006-01-02"),
			Status:     "Continue",
		})
	}
	return goals
}

func genVitals(rng *rand.Rand) encounter.Vitals {
	hr := 62 + rng.Intn(30)
	spo2 := 95 + rng.Intn(5)
	return encounter.Vitals{
		BP:   fmt.Sprintf("%d/%d", 108+rng.Intn(30), 64+rng.Intn(20)),
		HR:   &hr,
		SpO2: &spo2,
	}
}

func pickCodes(rng *rand.Rand, plan []string, n int) []string {
	if n > len(plan) {
		n = len(plan)
	}
	idx := rng.Perm(len(plan))[:n]
	codes := make([]string, n)
	for i, j := range idx {
		codes[i] = plan[j]
	}
	return codes
}

func (s *Seeder) writeEncounter(ctx context.Context, rng *rand.Rand, p *patient.Patient, provider *user.User, encType string, date time.Time, note *encounter.Note, cptCodes []string, signed bool) error {
	enc := &encounter.Encounter{
		PatientID:     p.ID,
		ProviderID:    provider.ID,
		EncounterDate: date,
		EncounterType: encType,
		Location:      "Outpatient PT",
		Status:        encounter.StatusDraft,
	}
	if signed {
		signedAt := date.Add(2 * time.Hour)
		enc.Status = encounter.StatusSigned
		enc.SignedAt = &signedAt
		enc.Locked = true
	}

	if err := s.encounters.Create(ctx, enc, note); err != nil {
		return err
	}

	var charges []*billing.Charge
	for _, code := range cptCodes {
		c := &billing.Charge{EncounterID: enc.ID, CPTCode: code, Units: 1}
		if meta, ok := billing.Lookup(code); ok {
			desc := meta.Description
			c.Description = &desc
			if meta.Timed {
				minutes := 8 + rng.Intn(23)
				c.Minutes = &minutes
				c.Units = billing.UnitsFromMinutes(c.Minutes)
			}
		}
		charges = append(charges, c)
	}
	return s.charges.ReplaceForEncounter(ctx, enc.ID, charges)
}
