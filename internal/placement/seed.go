package placement

import (
	"github.com/abhisek/conjugo/internal/competency"
	"github.com/abhisek/conjugo/internal/level"
)

func q(id string, lvl level.Level, mood competency.Mood, tense competency.Tense,
	prompt, correct, explanation string, options [4]string) *Question {
	return &Question{
		ID:          id,
		Prompt:      prompt,
		Options:     options,
		Correct:     correct,
		Explanation: explanation,
		Competency:  competency.Key{Mood: mood, Tense: tense},
		Level:       lvl,
	}
}

// DefaultPool returns the built-in placement question pool. MustDefaultPool
// panics on validation failure, which would mean broken seed data.
func DefaultPool() (*Pool, error) {
	return NewPool(seedQuestions())
}

// MustDefaultPool is DefaultPool for composition roots.
func MustDefaultPool() *Pool {
	p, err := DefaultPool()
	if err != nil {
		panic(err)
	}
	return p
}

func seedQuestions() []*Question {
	return []*Question{
		// A1: indicative present, regular verbs.
		q("a1-hablar-yo", level.A1, competency.MoodIndicative, competency.TensePresent,
			"Yo ___ español. (hablar)", "hablo",
			"Regular -ar verbs take -o in the first person singular.",
			[4]string{"hablo", "hablas", "habla", "hablan"}),
		q("a1-comer-tu", level.A1, competency.MoodIndicative, competency.TensePresent,
			"Tú ___ pan. (comer)", "comes",
			"Regular -er verbs take -es in the second person singular.",
			[4]string{"como", "comes", "come", "comemos"}),
		q("a1-vivir-ella", level.A1, competency.MoodIndicative, competency.TensePresent,
			"Ella ___ en Madrid. (vivir)", "vive",
			"Regular -ir verbs take -e in the third person singular.",
			[4]string{"vivo", "vives", "vive", "viven"}),
		q("a1-ser-yo", level.A1, competency.MoodIndicative, competency.TensePresent,
			"Yo ___ estudiante. (ser)", "soy",
			"Ser is irregular: yo soy.",
			[4]string{"soy", "eres", "es", "son"}),
		q("a1-tener-nosotros", level.A1, competency.MoodIndicative, competency.TensePresent,
			"Nosotros ___ un perro. (tener)", "tenemos",
			"Tener is regular in the first person plural: tenemos.",
			[4]string{"tengo", "tienes", "tenemos", "tienen"}),
		q("a1-estar-ellos", level.A1, competency.MoodIndicative, competency.TensePresent,
			"Ellos ___ en casa. (estar)", "están",
			"Estar takes an accent in the third person plural: están.",
			[4]string{"estoy", "estás", "está", "están"}),

		// A2: preterite and simple future.
		q("a2-hablar-pret", level.A2, competency.MoodIndicative, competency.TensePreterite,
			"Ayer yo ___ con mi madre. (hablar)", "hablé",
			"The -ar preterite first person singular ends in -é.",
			[4]string{"hablé", "hablaba", "hablo", "hablaré"}),
		q("a2-comer-pret", level.A2, competency.MoodIndicative, competency.TensePreterite,
			"Anoche ella ___ paella. (comer)", "comió",
			"The -er preterite third person singular ends in -ió.",
			[4]string{"comía", "comió", "come", "comerá"}),
		q("a2-ir-pret", level.A2, competency.MoodIndicative, competency.TensePreterite,
			"Ellos ___ al cine el sábado. (ir)", "fueron",
			"Ir is irregular in the preterite: fueron.",
			[4]string{"iban", "fueron", "van", "irán"}),
		q("a2-viajar-fut", level.A2, competency.MoodIndicative, competency.TenseFuture,
			"El año que viene nosotros ___ a Perú. (viajar)", "viajaremos",
			"The simple future adds -emos to the infinitive.",
			[4]string{"viajamos", "viajábamos", "viajaremos", "viajemos"}),
		q("a2-hacer-pret", level.A2, competency.MoodIndicative, competency.TensePreterite,
			"¿Qué ___ tú ayer? (hacer)", "hiciste",
			"Hacer has an irregular preterite stem: hic-.",
			[4]string{"haces", "hacías", "hiciste", "harás"}),
		q("a2-tener-fut", level.A2, competency.MoodIndicative, competency.TenseFuture,
			"Mañana yo ___ más tiempo. (tener)", "tendré",
			"Tener has an irregular future stem: tendr-.",
			[4]string{"tengo", "tenía", "tuve", "tendré"}),

		// B1: imperfect, present subjunctive, affirmative imperative.
		q("b1-jugar-impf", level.B1, competency.MoodIndicative, competency.TenseImperfect,
			"De niño yo ___ al fútbol todos los días. (jugar)", "jugaba",
			"Habitual past actions take the imperfect: jugaba.",
			[4]string{"jugué", "jugaba", "juego", "jugaría"}),
		q("b1-ser-impf", level.B1, competency.MoodIndicative, competency.TenseImperfect,
			"Cuando éramos pequeños, la casa ___ enorme. (ser)", "era",
			"Ser is irregular in the imperfect: era.",
			[4]string{"fue", "era", "es", "sería"}),
		q("b1-querer-subj", level.B1, competency.MoodSubjunctive, competency.TensePresent,
			"Espero que tú ___ venir. (querer)", "quieras",
			"Espero que triggers the present subjunctive: quieras.",
			[4]string{"quieres", "quieras", "querrás", "querías"}),
		q("b1-haber-subj", level.B1, competency.MoodSubjunctive, competency.TensePresent,
			"No creo que ___ tiempo. (haber)", "haya",
			"Doubt triggers the subjunctive: haya.",
			[4]string{"hay", "haya", "habrá", "había"}),
		q("b1-venir-imp", level.B1, competency.MoodImperative, competency.TenseAffirmative,
			"¡___ aquí ahora mismo! (venir, tú)", "ven",
			"The affirmative tú imperative of venir is irregular: ven.",
			[4]string{"ven", "vienes", "venga", "vengas"}),
		q("b1-decir-imp", level.B1, competency.MoodImperative, competency.TenseAffirmative,
			"___ la verdad. (decir, tú)", "di",
			"The affirmative tú imperative of decir is irregular: di.",
			[4]string{"dices", "di", "diga", "dirás"}),

		// B2: conditional, negative imperative, present perfect.
		q("b2-gustar-cond", level.B2, competency.MoodConditional, competency.TenseSimple,
			"Me ___ viajar más. (gustar)", "gustaría",
			"Polite wishes take the conditional: gustaría.",
			[4]string{"gusta", "gustaba", "gustaría", "guste"}),
		q("b2-poder-cond", level.B2, competency.MoodConditional, competency.TenseSimple,
			"¿___ usted ayudarme? (poder)", "podría",
			"Poder has an irregular conditional stem: podr-.",
			[4]string{"puede", "podía", "pudo", "podría"}),
		q("b2-hacer-negimp", level.B2, competency.MoodImperative, competency.TenseNegative,
			"No ___ ruido. (hacer, tú)", "hagas",
			"Negative tú commands use the present subjunctive: no hagas.",
			[4]string{"haces", "haz", "hagas", "harás"}),
		q("b2-ir-negimp", level.B2, competency.MoodImperative, competency.TenseNegative,
			"No te ___ todavía. (ir, tú)", "vayas",
			"Negative tú commands of ir use the subjunctive: no te vayas.",
			[4]string{"vas", "ve", "vayas", "irás"}),
		q("b2-ver-perf", level.B2, competency.MoodIndicative, competency.TensePerfect,
			"¿Has ___ esa película? (ver)", "visto",
			"Ver has an irregular past participle: visto.",
			[4]string{"veído", "visto", "viendo", "vido"}),
		q("b2-escribir-perf", level.B2, competency.MoodIndicative, competency.TensePerfect,
			"Todavía no hemos ___ la carta. (escribir)", "escrito",
			"Escribir has an irregular past participle: escrito.",
			[4]string{"escribido", "escrito", "escribiendo", "escribida"}),

		// C1: imperfect subjunctive, pluperfect, conditional perfect.
		q("c1-saber-subjimpf", level.C1, competency.MoodSubjunctive, competency.TenseImperfect,
			"Si yo ___ la respuesta, te la diría. (saber)", "supiera",
			"Contrary-to-fact si clauses take the imperfect subjunctive.",
			[4]string{"sé", "sabía", "supiera", "sabría"}),
		q("c1-ser-subjimpf", level.C1, competency.MoodSubjunctive, competency.TenseImperfect,
			"Ojalá ___ más fácil. (ser)", "fuera",
			"Ojalá with a remote wish takes the imperfect subjunctive: fuera.",
			[4]string{"es", "era", "sea", "fuera"}),
		q("c1-llegar-pluperf", level.C1, competency.MoodIndicative, competency.TensePluperfect,
			"Cuando llamaste, ya ___ salido. (haber, yo)", "había",
			"An action before a past reference point takes the pluperfect.",
			[4]string{"he", "había", "hube", "habría"}),
		q("c1-terminar-pluperf", level.C1, competency.MoodIndicative, competency.TensePluperfect,
			"Ellos ya ___ terminado cuando llegamos. (haber)", "habían",
			"The pluperfect uses the imperfect of haber: habían terminado.",
			[4]string{"han", "habían", "hubieron", "habrán"}),
		q("c1-hacer-condperf", level.C1, competency.MoodConditional, competency.TensePerfect,
			"Yo lo ___ hecho de otra manera. (haber)", "habría",
			"Hypothetical past outcomes take the conditional perfect.",
			[4]string{"he", "había", "habría", "haya"}),
		q("c1-decir-subjperf", level.C1, competency.MoodSubjunctive, competency.TensePerfect,
			"Dudo que lo ___ dicho en serio. (haber)", "haya",
			"Doubt about a completed action takes the perfect subjunctive.",
			[4]string{"ha", "había", "haya", "hubo"}),
	}
}
