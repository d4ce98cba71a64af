// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"fmt"
	"sort"
)

// Samples holds bundled consultation transcripts used by the `sample`
// command and as parser fixtures. Each is plain text in the speaker-prefixed
// form FromText understands.
var Samples = map[string]string{
	"viral-fever":      sampleViralFever,
	"tension-headache": sampleTensionHeadache,
}

// SampleNames returns the bundled sample names in sorted order.
func SampleNames() []string {
	names := make([]string, 0, len(Samples))
	for name := range Samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sample returns the named bundled transcript.
func Sample(name string) (string, error) {
	s, ok := Samples[name]
	if !ok {
		return "", fmt.Errorf("unknown sample %q (available: %v)", name, SampleNames())
	}
	return s, nil
}

const sampleViralFever = `Doctor: Good morning. Please come in and have a seat.
Patient: Good morning, Doctor.
Doctor: Can I have your full name and age, please?
Patient: Yes, I'm Rahul Mehta, 32 years old.
Doctor: Alright, Mr. Mehta. What brings you in today?
Patient: I've been having fever, sore throat, and fatigue for the last three days.
Doctor: Have you experienced any cough, body ache, or shortness of breath?
Patient: Yes, mild body pain, but no cough or breathing trouble.
Doctor: Understood. Have you checked your temperature at home?
Patient: Yes, it was around 101 F last night.
Doctor: Thank you. Based on your symptoms, this looks like a mild viral fever with throat infection.
Patient: Is it something serious, Doctor?
Doctor: No, it's not serious. It's a common viral infection that should resolve in two to three days with proper rest and medication.
Doctor: I'm prescribing Paracetamol 650 mg, one tablet every six hours after food, for fever and pain.
Doctor: Also, take Cetrizine 10 mg at night if you feel throat irritation or runny nose.
Doctor: Drink plenty of fluids, eat light meals, and avoid cold drinks or ice cream.
Patient: Okay, Doctor. Should I take any antibiotics?
Doctor: No antibiotics are required right now. If your fever continues beyond three days or your throat pain worsens, we'll do a blood test and start antibiotics if needed.
Patient: Alright, Doctor. I'll follow your advice.
Doctor: Great. Diagnosis: Acute Viral Pharyngitis. Follow up in 3 days if symptoms persist.
Patient: Thank you, Doctor.
Doctor: You're welcome, Mr. Mehta. Take rest and get well soon.`

const sampleTensionHeadache = `Doctor: Good morning! Please have a seat. What brings you here today?
Patient: Hi doctor. I'm Sarah Martinez, I'm 28 years old. I've been having really bad headaches for the past week.
Doctor: I see. Can you describe the headaches for me? Where do you feel them?
Patient: They're mostly on the right side of my head, like a throbbing pain. Sometimes it gets so bad I feel nauseous.
Doctor: How often are they occurring?
Patient: Almost every day, usually in the afternoon. They last for a few hours.
Doctor: On a scale of 1 to 10, how severe is the pain?
Patient: I'd say around 7 or 8 when it's at its worst.
Doctor: Are you currently taking any medications?
Patient: Just birth control pills. Oh, and I'm allergic to penicillin.
Doctor: Good to know. Any recent stress or changes in your routine?
Patient: Well, I started a new job about two weeks ago. It's been pretty stressful.
Doctor: That could certainly be a factor. Let me check your blood pressure. Your BP is 135 over 85, slightly elevated. Temperature is normal at 98.6 F. Based on your symptoms, this appears to be tension headaches, possibly triggered by stress.
Patient: Is there anything I can take for it?
Doctor: Yes, I'm going to prescribe you Sumatriptan 50 mg. Take one tablet when you feel a headache coming on, as needed for migraine attacks.
Doctor: I'm also prescribing Naproxen 500 mg for the pain - take one tablet twice daily with food for the next 7 days.
Patient: Okay, got it.
Doctor: Avoid excessive screen time. Drink plenty of water throughout the day, and try to identify and avoid any trigger foods like caffeine or chocolate.
Patient: Should I be worried about anything?
Doctor: If the headaches become more severe, if you experience vision changes, confusion, or weakness, or if they don't improve in two weeks, call me immediately. Otherwise, follow up in three weeks to see how you're doing.
Patient: Thank you, doctor.
Doctor: You're welcome, Sarah. Take care and don't hesitate to reach out if you have concerns.`
