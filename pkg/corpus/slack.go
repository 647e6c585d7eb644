package corpus

import "github.com/japaniel/devlingo/pkg/phrase"

// Slack phrases, easy tier (slack_001 onward).
var slackEasyBatch1 = []phrase.Record{
	{
		ID:      "slack_001",
		English: "Hey, quick question about the API endpoint.",
		Context: "Starting a conversation on Slack to ask a teammate something",
		Translations: map[string]string{
			"pt-BR":   "Ei, uma pergunta rápida sobre o endpoint da API.",
			"es":      "Oye, una pregunta rápida sobre el endpoint de la API.",
			"fr":      "Salut, une question rapide sur l'endpoint de l'API.",
			"de":      "Hey, kurze Frage zum API-Endpunkt.",
			"it":      "Ehi, una domanda veloce sull'endpoint dell'API.",
			"ja":      "APIエンドポイントについて簡単な質問があります。",
			"ko":      "API 엔드포인트에 대해 간단한 질문이 있어요.",
			"zh-Hans": "嘿，关于API端点有个快速问题。",
			"hi":      "अरे, API एंडपॉइंट के बारे में एक छोटा सा सवाल है।",
			"tr":      "Hey, API endpoint'i hakkında kısa bir sorum var.",
		},
		Difficulty: phrase.Easy,
		Category:   phrase.Slack,
	},
	{
		ID:      "slack_002",
		English: "Can you take a look at my PR?",
		Context: "Asking a teammate to review your pull request",
		Translations: map[string]string{
			"pt-BR":   "Você pode dar uma olhada no meu PR?",
			"es":      "¿Puedes echar un vistazo a mi PR?",
			"fr":      "Tu peux jeter un œil à ma PR ?",
			"de":      "Kannst du dir meinen PR anschauen?",
			"it":      "Puoi dare un'occhiata alla mia PR?",
			"ja":      "私のPRを見てもらえますか？",
			"ko":      "제 PR 좀 봐주실 수 있나요?",
			"zh-Hans": "你能看一下我的PR吗？",
			"hi":      "क्या आप मेरा PR देख सकते हैं?",
			"tr":      "PR'ıma bir göz atabilir misin?",
		},
		Difficulty: phrase.Easy,
		Category:   phrase.Slack,
	},
	{
		ID:      "slack_003",
		English: "Sounds good, thanks!",
		Context: "Acknowledging a teammate's response or agreement",
		Translations: map[string]string{
			"pt-BR":   "Parece bom, obrigado!",
			"es":      "Suena bien, ¡gracias!",
			"fr":      "Ça me va, merci !",
			"de":      "Klingt gut, danke!",
			"it":      "Mi sembra buono, grazie!",
			"ja":      "いいですね、ありがとう！",
			"ko":      "좋아요, 감사합니다!",
			"zh-Hans": "听起来不错，谢谢！",
			"hi":      "अच्छा लगता है, धन्यवाद!",
			"tr":      "Kulağa iyi geliyor, teşekkürler!",
		},
		Difficulty: phrase.Easy,
		Category:   phrase.Slack,
	},
	{
		ID:      "slack_004",
		English: "I'm on it.",
		Context: "Letting someone know you're handling a task",
		Translations: map[string]string{
			"pt-BR":   "Estou cuidando disso.",
			"es":      "Estoy en ello.",
			"fr":      "Je m'en occupe.",
			"de":      "Ich kümmere mich darum.",
			"it":      "Me ne occupo io.",
			"ja":      "対応中です。",
			"ko":      "제가 처리하고 있어요.",
			"zh-Hans": "我在处理了。",
			"hi":      "मैं इस पर काम कर रहा हूँ।",
			"tr":      "Üzerindeyim.",
		},
		Difficulty: phrase.Easy,
		Category:   phrase.Slack,
	},
	{
		ID:      "slack_005",
		English: "Let me check and get back to you.",
		Context: "Telling someone you need time to find an answer",
		Translations: map[string]string{
			"pt-BR":   "Deixa eu verificar e te respondo.",
			"es":      "Déjame verificar y te respondo.",
			"fr":      "Laisse-moi vérifier et je te reviens.",
			"de":      "Lass mich das prüfen und ich melde mich.",
			"it":      "Fammi controllare e ti faccio sapere.",
			"ja":      "確認して折り返します。",
			"ko":      "확인하고 다시 알려드릴게요.",
			"zh-Hans": "我查一下再回复你。",
			"hi":      "मैं जाँच करके वापस बताता हूँ।",
			"tr":      "Kontrol edip sana döneyim.",
		},
		Difficulty: phrase.Easy,
		Category:   phrase.Slack,
	},
	{
		ID:      "slack_006",
		English: "Good morning, team!",
		Context: "Greeting your team at the start of the day in a channel",
		Translations: map[string]string{
			"pt-BR":   "Bom dia, equipe!",
			"es":      "¡Buenos días, equipo!",
			"fr":      "Bonjour, l'équipe !",
			"de":      "Guten Morgen, Team!",
			"it":      "Buongiorno, team!",
			"ja":      "おはようございます、チームの皆さん！",
			"ko":      "좋은 아침이에요, 팀!",
			"zh-Hans": "早上好，团队！",
			"hi":      "सुप्रभात, टीम!",
			"tr":      "Günaydın, ekip!",
		},
		Difficulty: phrase.Easy,
		Category:   phrase.Slack,
	},
	{
		ID:      "slack_007",
		English: "Is anyone available for a quick sync?",
		Context: "Asking if a teammate can hop on a short call",
		Translations: map[string]string{
			"pt-BR":   "Alguém está disponível para um sync rápido?",
			"es":      "¿Alguien está disponible para un sync rápido?",
			"fr":      "Quelqu'un est disponible pour un sync rapide ?",
			"de":      "Hat jemand Zeit für ein kurzes Sync?",
			"it":      "Qualcuno è disponibile per un sync veloce?",
			"ja":      "誰か短いミーティングに参加できますか？",
			"ko":      "짧은 싱크 미팅 가능한 분 계신가요?",
			"zh-Hans": "有人有空快速同步一下吗？",
			"hi":      "क्या कोई एक छोटी सिंक के लिए उपलब्ध है?",
			"tr":      "Kısa bir senkronizasyon için müsait olan var mı?",
		},
		Difficulty: phrase.Easy,
		Category:   phrase.Slack,
	},
	{
		ID:      "slack_008",
		English: "Got it, will do.",
		Context: "Confirming you understood a request and will complete it",
		Translations: map[string]string{
			"pt-BR":   "Entendi, farei isso.",
			"es":      "Entendido, lo haré.",
			"fr":      "Compris, je m'en charge.",
			"de":      "Verstanden, mache ich.",
			"it":      "Capito, lo farò.",
			"ja":      "了解、やります。",
			"ko":      "알겠습니다, 할게요.",
			"zh-Hans": "收到，我来做。",
			"hi":      "समझ गया, कर दूँगा।",
			"tr":      "Anladım, yapacağım.",
		},
		Difficulty: phrase.Easy,
		Category:   phrase.Slack,
	},
	{
		ID:      "slack_009",
		English: "The build is broken.",
		Context: "Alerting the team that the CI/CD pipeline is failing",
		Translations: map[string]string{
			"pt-BR":   "O build está quebrado.",
			"es":      "El build está roto.",
			"fr":      "Le build est cassé.",
			"de":      "Der Build ist kaputt.",
			"it":      "La build è rotta.",
			"ja":      "ビルドが壊れています。",
			"ko":      "빌드가 깨졌어요.",
			"zh-Hans": "构建挂了。",
			"hi":      "बिल्ड टूट गया है।",
			"tr":      "Build bozuldu.",
		},
		Difficulty: phrase.Easy,
		Category:   phrase.Slack,
	},
	{
		ID:      "slack_010",
		English: "Thanks for the heads up!",
		Context: "Thanking someone for an early warning about an issue",
		Translations: map[string]string{
			"pt-BR":   "Obrigado pelo aviso!",
			"es":      "¡Gracias por el aviso!",
			"fr":      "Merci pour l'info !",
			"de":      "Danke für den Hinweis!",
			"it":      "Grazie per l'avviso!",
			"ja":      "教えてくれてありがとう！",
			"ko":      "미리 알려줘서 고마워요!",
			"zh-Hans": "谢谢提醒！",
			"hi":      "पहले से बताने के लिए धन्यवाद!",
			"tr":      "Uyarı için teşekkürler!",
		},
		Difficulty: phrase.Easy,
		Category:   phrase.Slack,
	},
	{
		ID:      "slack_011",
		English: "I just pushed a fix.",
		Context: "Telling the team you committed a bug fix to the repository",
		Translations: map[string]string{
			"pt-BR":   "Acabei de enviar uma correção.",
			"es":      "Acabo de subir una corrección.",
			"fr":      "Je viens de pousser un correctif.",
			"de":      "Ich habe gerade einen Fix gepusht.",
			"it":      "Ho appena pushato una correzione.",
			"ja":      "修正をプッシュしました。",
			"ko":      "방금 수정 사항을 푸시했어요.",
			"zh-Hans": "我刚推了一个修复。",
			"hi":      "मैंने अभी एक फिक्स पुश किया।",
			"tr":      "Az önce bir düzeltme push'ladım.",
		},
		Difficulty: phrase.Easy,
		Category:   phrase.Slack,
	},
	{
		ID:      "slack_012",
		English: "Can you merge this when you get a chance?",
		Context: "Asking someone to merge your approved pull request",
		Translations: map[string]string{
			"pt-BR":   "Você pode fazer o merge quando tiver um momento?",
			"es":      "¿Puedes hacer merge cuando puedas?",
			"fr":      "Tu peux merger ça quand tu as un moment ?",
			"de":      "Kannst du das mergen, wenn du Zeit hast?",
			"it":      "Puoi fare il merge quando hai un momento?",
			"ja":      "時間があるときにマージしてもらえますか？",
			"ko":      "시간 되실 때 머지해 주실 수 있나요?",
			"zh-Hans": "你有空的时候能合并一下吗？",
			"hi":      "जब मौका मिले तो इसे मर्ज कर सकते हैं?",
			"tr":      "Fırsat bulduğunda bunu merge edebilir misin?",
		},
		Difficulty: phrase.Easy,
		Category:   phrase.Slack,
	},
	{
		ID:      "slack_013",
		English: "I'll be out of office tomorrow.",
		Context: "Notifying the team about your day off",
		Translations: map[string]string{
			"pt-BR":   "Estarei fora do escritório amanhã.",
			"es":      "Estaré fuera de la oficina mañana.",
			"fr":      "Je serai absent demain.",
			"de":      "Ich bin morgen nicht im Büro.",
			"it":      "Domani sarò fuori ufficio.",
			"ja":      "明日は不在です。",
			"ko":      "내일 부재 중이에요.",
			"zh-Hans": "我明天不在。",
			"hi":      "मैं कल ऑफिस से बाहर रहूँगा।",
			"tr":      "Yarın ofis dışında olacağım.",
		},
		Difficulty: phrase.Easy,
		Category:   phrase.Slack,
	},
	{
		ID:      "slack_014",
		English: "Deployed to staging.",
		Context: "Informing the team that code has been deployed to the staging environment",
		Translations: map[string]string{
			"pt-BR":   "Deploy feito no staging.",
			"es":      "Desplegado en staging.",
			"fr":      "Déployé en staging.",
			"de":      "Auf Staging deployt.",
			"it":      "Deployato in staging.",
			"ja":      "ステージングにデプロイしました。",
			"ko":      "스테이징에 배포했어요.",
			"zh-Hans": "已部署到预发布环境。",
			"hi":      "स्टेजिंग पर डिप्लॉय कर दिया।",
			"tr":      "Staging'e deploy edildi.",
		},
		Difficulty: phrase.Easy,
		Category:   phrase.Slack,
	},
	{
		ID:      "slack_015",
		English: "Any blockers?",
		Context: "Asking during standup if anyone has obstacles",
		Translations: map[string]string{
			"pt-BR":   "Algum bloqueio?",
			"es":      "¿Algún bloqueante?",
			"fr":      "Des blocages ?",
			"de":      "Irgendwelche Blocker?",
			"it":      "Qualche blocco?",
			"ja":      "ブロッカーはありますか？",
			"ko":      "블로커 있나요?",
			"zh-Hans": "有什么阻碍吗？",
			"hi":      "कोई ब्लॉकर?",
			"tr":      "Herhangi bir engel var mı?",
		},
		Difficulty: phrase.Easy,
		Category:   phrase.Slack,
	},
	{
		ID:      "slack_016",
		English: "No blockers on my end.",
		Context: "Reporting that you have no obstacles during standup",
		Translations: map[string]string{
			"pt-BR":   "Sem bloqueios da minha parte.",
			"es":      "Sin bloqueantes de mi lado.",
			"fr":      "Pas de blocage de mon côté.",
			"de":      "Keine Blocker bei mir.",
			"it":      "Nessun blocco da parte mia.",
			"ja":      "私の方にはブロッカーはありません。",
			"ko":      "제 쪽에는 블로커 없어요.",
			"zh-Hans": "我这边没有阻碍。",
			"hi":      "मेरी तरफ से कोई ब्लॉकर नहीं।",
			"tr":      "Benim tarafımda engel yok.",
		},
		Difficulty: phrase.Easy,
		Category:   phrase.Slack,
	},
	{
		ID:      "slack_017",
		English: "I approved your PR.",
		Context: "Letting someone know you reviewed and approved their pull request",
		Translations: map[string]string{
			"pt-BR":   "Aprovei seu PR.",
			"es":      "Aprobé tu PR.",
			"fr":      "J'ai approuvé ta PR.",
			"de":      "Ich habe deinen PR genehmigt.",
			"it":      "Ho approvato la tua PR.",
			"ja":      "あなたのPRを承認しました。",
			"ko":      "PR 승인했어요.",
			"zh-Hans": "我批准了你的PR。",
			"hi":      "मैंने आपका PR अप्रूव कर दिया।",
			"tr":      "PR'ını onayladım.",
		},
		Difficulty: phrase.Easy,
		Category:   phrase.Slack,
	},
	{
		ID:      "slack_018",
		English: "Could you clarify what you mean?",
		Context: "Asking someone to explain their message more clearly",
		Translations: map[string]string{
			"pt-BR":   "Você poderia esclarecer o que quis dizer?",
			"es":      "¿Podrías aclarar qué quieres decir?",
			"fr":      "Tu pourrais clarifier ce que tu veux dire ?",
			"de":      "Könntest du erklären, was du meinst?",
			"it":      "Potresti chiarire cosa intendi?",
			"ja":      "どういう意味か説明してもらえますか？",
			"ko":      "무슨 뜻인지 좀 더 설명해 주실 수 있나요?",
			"zh-Hans": "你能说清楚一点吗？",
			"hi":      "क्या आप स्पष्ट कर सकते हैं कि आपका क्या मतलब है?",
			"tr":      "Ne demek istediğini açıklayabilir misin?",
		},
		Difficulty: phrase.Easy,
		Category:   phrase.Slack,
	},
	{
		ID:      "slack_019",
		English: "Here's the link to the ticket.",
		Context: "Sharing a Jira or project management ticket link",
		Translations: map[string]string{
			"pt-BR":   "Aqui está o link do ticket.",
			"es":      "Aquí está el enlace del ticket.",
			"fr":      "Voici le lien du ticket.",
			"de":      "Hier ist der Link zum Ticket.",
			"it":      "Ecco il link del ticket.",
			"ja":      "チケットのリンクはこちらです。",
			"ko":      "티켓 링크입니다.",
			"zh-Hans": "这是工单的链接。",
			"hi":      "यह रहा टिकट का लिंक।",
			"tr":      "İşte ticket'ın linki.",
		},
		Difficulty: phrase.Easy,
		Category:   phrase.Slack,
	},
	{
		ID:      "slack_020",
		English: "I left a comment on the PR.",
		Context: "Telling someone you added feedback on their pull request",
		Translations: map[string]string{
			"pt-BR":   "Deixei um comentário no PR.",
			"es":      "Dejé un comentario en el PR.",
			"fr":      "J'ai laissé un commentaire sur la PR.",
			"de":      "Ich habe einen Kommentar zum PR hinterlassen.",
			"it":      "Ho lasciato un commento sulla PR.",
			"ja":      "PRにコメントを残しました。",
			"ko":      "PR에 코멘트 남겼어요.",
			"zh-Hans": "我在PR上留了评论。",
			"hi":      "मैंने PR पर एक कमेंट छोड़ा।",
			"tr":      "PR'a bir yorum bıraktım.",
		},
		Difficulty: phrase.Easy,
		Category:   phrase.Slack,
	},
}

var slackMediumBatch1 = []phrase.Record{
	{
		ID:      "slack_021",
		English: "Heads up: the staging deploy is blocked until the migration finishes.",
		Context: "Warning the channel about a delay before people try to deploy",
		Translations: map[string]string{
			"pt-BR":   "Atenção: o deploy em staging está bloqueado até a migração terminar.",
			"es":      "Aviso: el deploy a staging está bloqueado hasta que termine la migración.",
			"fr":      "Pour info : le déploiement en staging est bloqué jusqu'à la fin de la migration.",
			"de":      "Kurzer Hinweis: Das Staging-Deployment ist blockiert, bis die Migration fertig ist.",
			"it":      "Attenzione: il deploy in staging è bloccato finché la migrazione non finisce.",
			"ja":      "お知らせ：マイグレーションが終わるまでステージングへのデプロイはブロックされています。",
			"ko":      "참고로, 마이그레이션이 끝날 때까지 스테이징 배포가 막혀 있어요.",
			"zh-Hans": "提醒一下：迁移完成之前，预发布环境的部署被阻塞了。",
			"hi":      "ध्यान दें: माइग्रेशन पूरा होने तक स्टेजिंग डिप्लॉय रुका हुआ है।",
			"tr":      "Bilginize: migration bitene kadar staging deploy'u engellendi.",
		},
		Difficulty: phrase.Medium,
		Category:   phrase.Slack,
	},
	{
		ID:      "slack_022",
		English: "Can we move this thread to a quick call?",
		Context: "Suggesting a call when a Slack discussion is getting too long",
		Translations: map[string]string{
			"pt-BR":   "Podemos levar essa conversa para uma chamada rápida?",
			"es":      "¿Podemos pasar este hilo a una llamada rápida?",
			"fr":      "On peut passer ce fil en appel rapide ?",
			"de":      "Können wir diesen Thread in einen kurzen Call verlegen?",
			"it":      "Possiamo spostare questa discussione in una chiamata veloce?",
			"ja":      "このスレッド、少し通話で話しませんか？",
			"ko":      "이 스레드는 잠깐 통화로 얘기할까요?",
			"zh-Hans": "我们能把这个讨论转成一个简短的通话吗？",
			"hi":      "क्या हम इस थ्रेड को एक छोटी कॉल पर ले जा सकते हैं?",
			"tr":      "Bu konuyu kısa bir aramaya taşıyabilir miyiz?",
		},
		Difficulty: phrase.Medium,
		Category:   phrase.Slack,
	},
	{
		ID:      "slack_023",
		English: "I'm not sure I follow, could you share an example?",
		Context: "Asking for a concrete example when an explanation is unclear",
		Translations: map[string]string{
			"pt-BR":   "Não tenho certeza se entendi, você poderia dar um exemplo?",
			"es":      "No estoy seguro de entenderlo, ¿podrías compartir un ejemplo?",
			"fr":      "Je ne suis pas sûr de suivre, tu pourrais donner un exemple ?",
			"de":      "Ich bin nicht sicher, ob ich folgen kann. Kannst du ein Beispiel teilen?",
			"it":      "Non sono sicuro di aver capito, potresti condividere un esempio?",
			"ja":      "よく理解できていないかもしれません。例を共有してもらえますか？",
			"ko":      "잘 이해가 안 되는데, 예시를 공유해 주실 수 있나요?",
			"zh-Hans": "我不太明白，你能举个例子吗？",
			"hi":      "मुझे पूरी तरह समझ नहीं आया, क्या आप एक उदाहरण शेयर कर सकते हैं?",
			"tr":      "Tam anladığımdan emin değilim, bir örnek paylaşabilir misin?",
		},
		Difficulty: phrase.Medium,
		Category:   phrase.Slack,
	},
}
