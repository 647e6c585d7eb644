package corpus

import "github.com/japaniel/devlingo/pkg/phrase"

var emailEasyBatch1 = []phrase.Record{
	{
		ID:      "email_001",
		English: "Thanks for the update.",
		Context: "Acknowledging a status email from a colleague",
		Translations: map[string]string{
			"pt-BR":   "Obrigado pela atualização.",
			"es":      "Gracias por la actualización.",
			"fr":      "Merci pour la mise à jour.",
			"de":      "Danke für das Update.",
			"it":      "Grazie per l'aggiornamento.",
			"ja":      "ご連絡ありがとうございます。",
			"ko":      "업데이트 감사합니다.",
			"zh-Hans": "感谢更新。",
			"hi":      "अपडेट के लिए धन्यवाद।",
			"tr":      "Güncelleme için teşekkürler.",
		},
		Difficulty: phrase.Easy,
		Category:   phrase.Email,
	},
	{
		ID:      "email_002",
		English: "Please find the report attached.",
		Context: "Introducing an attachment in an email",
		Translations: map[string]string{
			"pt-BR":   "Segue o relatório em anexo.",
			"es":      "Adjunto encontrarás el informe.",
			"fr":      "Veuillez trouver le rapport en pièce jointe.",
			"de":      "Anbei findest du den Bericht.",
			"it":      "In allegato trovi il report.",
			"ja":      "報告書を添付しましたのでご確認ください。",
			"ko":      "보고서를 첨부했습니다.",
			"zh-Hans": "请查收附件中的报告。",
			"hi":      "कृपया संलग्न रिपोर्ट देखें।",
			"tr":      "Raporu ekte bulabilirsiniz.",
		},
		Difficulty: phrase.Easy,
		Category:   phrase.Email,
	},
	{
		ID:      "email_003",
		English: "Let me know if you have any questions.",
		Context: "Closing an email by inviting follow-up questions",
		Translations: map[string]string{
			"pt-BR":   "Me avise se tiver alguma dúvida.",
			"es":      "Avísame si tienes alguna pregunta.",
			"fr":      "N'hésite pas si tu as des questions.",
			"de":      "Sag Bescheid, wenn du Fragen hast.",
			"it":      "Fammi sapere se hai domande.",
			"ja":      "ご不明な点があればお知らせください。",
			"ko":      "궁금한 점이 있으면 알려주세요.",
			"zh-Hans": "如果有任何问题请告诉我。",
			"hi":      "अगर कोई सवाल हो तो मुझे बताइए।",
			"tr":      "Herhangi bir sorunuz olursa bana bildirin.",
		},
		Difficulty: phrase.Easy,
		Category:   phrase.Email,
	},
	{
		ID:      "email_004",
		English: "I hope you're doing well.",
		Context: "Friendly opening line of a work email",
		Translations: map[string]string{
			"pt-BR":   "Espero que você esteja bem.",
			"es":      "Espero que estés bien.",
			"fr":      "J'espère que tu vas bien.",
			"de":      "Ich hoffe, es geht dir gut.",
			"it":      "Spero che tu stia bene.",
			"ja":      "お元気でお過ごしのことと思います。",
			"ko":      "잘 지내고 계시길 바랍니다.",
			"zh-Hans": "希望你一切都好。",
			"hi":      "आशा है आप अच्छे होंगे।",
			"tr":      "Umarım iyisinizdir.",
		},
		Difficulty: phrase.Easy,
		Category:   phrase.Email,
	},
}

var emailMediumBatch1 = []phrase.Record{
	{
		ID:      "email_005",
		English: "Just following up on my previous email.",
		Context: "Politely reminding someone who has not replied yet",
		Translations: map[string]string{
			"pt-BR":   "Só retomando o meu e-mail anterior.",
			"es":      "Solo hago seguimiento de mi correo anterior.",
			"fr":      "Je reviens vers toi au sujet de mon précédent e-mail.",
			"de":      "Ich wollte nur kurz an meine vorherige E-Mail erinnern.",
			"it":      "Ti scrivo per dare seguito alla mia email precedente.",
			"ja":      "先日のメールの件で再度ご連絡しました。",
			"ko":      "이전에 보낸 메일 관련해서 다시 연락드립니다.",
			"zh-Hans": "跟进一下我之前发的邮件。",
			"hi":      "बस मेरे पिछले ईमेल के बारे में फॉलो-अप कर रहा हूँ।",
			"tr":      "Önceki e-postamla ilgili dönüş yapmak istedim.",
		},
		Difficulty: phrase.Medium,
		Category:   phrase.Email,
	},
	{
		ID:      "email_006",
		English: "Could we push the review to Thursday?",
		Context: "Asking to reschedule a meeting or deadline",
		Translations: map[string]string{
			"pt-BR":   "Podemos adiar a revisão para quinta-feira?",
			"es":      "¿Podríamos pasar la revisión al jueves?",
			"fr":      "Pourrait-on décaler la revue à jeudi ?",
			"de":      "Könnten wir das Review auf Donnerstag verschieben?",
			"it":      "Potremmo spostare la revisione a giovedì?",
			"ja":      "レビューを木曜日に延期できますか？",
			"ko":      "리뷰를 목요일로 미룰 수 있을까요?",
			"zh-Hans": "我们能把评审推迟到周四吗？",
			"hi":      "क्या हम रिव्यू को गुरुवार तक टाल सकते हैं?",
			"tr":      "İncelemeyi perşembeye erteleyebilir miyiz?",
		},
		Difficulty: phrase.Medium,
		Category:   phrase.Email,
	},
}

var emailHardBatch1 = []phrase.Record{
	{
		ID:      "email_007",
		English: "I'd like to flag a potential risk to the release timeline.",
		Context: "Raising a concern with stakeholders in a formal email",
		Translations: map[string]string{
			"pt-BR":   "Gostaria de sinalizar um possível risco para o cronograma de lançamento.",
			"es":      "Me gustaría señalar un posible riesgo para el calendario de lanzamiento.",
			"fr":      "J'aimerais signaler un risque potentiel pour le calendrier de la release.",
			"de":      "Ich möchte auf ein mögliches Risiko für den Release-Zeitplan hinweisen.",
			"it":      "Vorrei segnalare un possibile rischio per la tempistica del rilascio.",
			"ja":      "リリーススケジュールに対する潜在的なリスクについてお伝えしたいと思います。",
			"ko":      "릴리스 일정에 잠재적인 위험이 있어 말씀드리고 싶습니다.",
			"zh-Hans": "我想提醒一下发布时间表可能存在的风险。",
			"hi":      "मैं रिलीज़ टाइमलाइन के लिए एक संभावित जोखिम की ओर ध्यान दिलाना चाहता हूँ।",
			"tr":      "Sürüm takvimi için olası bir riske dikkat çekmek istiyorum.",
		},
		Difficulty: phrase.Hard,
		Category:   phrase.Email,
	},
}
