package catalog

// DraftMessage is an editable outreach template shown under the table.
type DraftMessage struct {
	Label string
	Body  string
}

// DraftMessages are the outreach templates, in display order. Bodies are
// markdown and rendered to HTML by the ui layer.
var DraftMessages = []DraftMessage{
	{
		Label: "Message template (English)",
		Body: `**Subject: Iran blackout — don't let repression happen in the dark**

Hello,

I'm writing with urgency about reports of widespread internet and communications disruptions in Iran. When people can't call, upload, or be reached, abuses become harder to document—and easier to deny.

Please do not treat this as a distant issue. We need clear, public leadership and real pressure. I urge you to:

- Speak out and keep attention on Iran's blackout and repression
- Support independent reporting and human-rights monitoring
- Back practical measures that help restore connectivity and protect civilians

Every day of silence gives more cover for violence. Please act.

Sincerely,
[Your name]
[City/Country]`,
	},
	{
		Label: "Meddelande (svenska)",
		Body: `**Ämne: Iran stängs ner — låt inte förtryck ske i mörker**

Hej,

Jag skriver med stor oro och brådska om rapporter om omfattande störningar i internet och kommunikation i Iran. När människor inte kan ringa, dela information eller ens nå varandra blir övergrepp svårare att dokumentera och lättare att förneka.

Det här får inte behandlas som en avlägsen fråga. Vi behöver tydligt, offentligt ledarskap och verklig press. Jag uppmanar dig att:

- Agera offentligt och hålla fokus på Irans blackout och repression
- Stödja oberoende rapportering och människorättsövervakning
- Ställa dig bakom konkreta åtgärder som återställer uppkoppling och skyddar civila

Varje dag av tystnad ger mer utrymme för våld. Snälla, agera.

Vänliga hälsningar,
[Ditt namn]
[Stad/Land]`,
	},
}
