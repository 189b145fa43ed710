package chatbot

// Rule maps a keyword list to a canned response. Rules are evaluated in
// declaration order and the first rule with any keyword hit wins, so the
// position of a rule in this table is part of the product behavior.
type Rule struct {
	Keywords []string
	Response string
}

// Greeting seeds every fresh chat transcript.
const Greeting = "¡Hola! 👋 Soy Irï, tu asistente personal de Investï. Estoy aquí para ayudarte a descubrir cómo nuestra plataforma puede transformar tu futuro financiero. ¿En qué puedo ayudarte hoy?"

// Fallback is returned when no rule matches.
const Fallback = "Interesante pregunta. 🤔 Investï está diseñado para democratizar la educación financiera y crear una comunidad donde todos puedan aprender y crecer juntos. Nuestra IA personaliza cada experiencia para maximizar tu aprendizaje. ¿Te gustaría saber más sobre alguna característica específica?"

// DefaultRules is the product rule table. Response texts are the exact copy
// shown on the landing page; do not edit them without product sign-off.
var DefaultRules = []Rule{
	{
		Keywords: []string{"hola", "hi", "hello", "buenas", "hey"},
		Response: "¡Hola! 😊 Me da mucho gusto conocerte. Soy Irï, tu asistente inteligente de Investï. Estoy aquí para ayudarte a descubrir cómo nuestra plataforma puede transformar tu tu futuro financiero. ¿Te gustaría saber más sobre nuestras características principales?",
	},
	{
		Keywords: []string{"que es", "qué es", "investï", "plataforma", "explicar"},
		Response: "¡Excelente pregunta! 🚀 Investï es la primera red social de educación financiera potenciada con Inteligencia Artificial. Conectamos a más de 100,000 personas con metas similares para aprender, compartir y crecer financieramente juntas. Imagínate tener acceso a una comunidad donde puedes aprender de expertos, conectar con personas como tú, y tener un mentor IA disponible 24/7. ¿Te interesa algún aspecto en particular?",
	},
	{
		Keywords: []string{"ia", "inteligencia artificial", "mentor", "como funciona", "cómo funciona"},
		Response: "¡Me encanta que preguntes sobre esto! 🤖 Yo soy parte de esa IA. Mi función es personalizar completamente tu experiencia en Investï. Analizo tus intereses, metas financieras y nivel de conocimiento para recomendarte las mejores comunidades, contenido educativo y personas con las que conectar. Además, estoy disponible 24/7 para responder tus dudas, guiar tu aprendizaje y ayudarte a alcanzar tus objetivos financieros. ¡Es como tener un mentor personal que nunca duerme! Recuerda, Irï no te dará recomendaciones directas de inversión, pero te guiará para que tomes tus propias decisiones informadas. ¿Te gustaría que te ayude a empezar?",
	},
	{
		Keywords: []string{"registro", "registrar", "unir", "beta", "inscribir", "apuntar"},
		Response: "¡Perfecto! 🎯 Me emociona ayudarte a unirte a la revolución financiera. Para registrarte en nuestro programa beta exclusivo, necesito algunos datos básicos. Puedo ayudarte a completar el formulario paso a paso, o si prefieres, puedes scrollear hacia abajo hasta la sección 'Registro Beta Exclusivo'. Durante la fase beta, Investï es completamente GRATUITO. ¿Empezamos con tu nombre completo?",
	},
	{
		Keywords: []string{"comunidad", "comunidades", "conectar", "gente", "personas"},
		Response: "¡Las comunidades son el corazón de Investï! ❤️ Tenemos más de 50 comunidades activas especializadas en diferentes áreas: criptomonedas (15,234 miembros), acciones y ETFs (22,891 miembros), startups y VC (8,567 miembros), educación financiera, libertad financiera, y muchas más. Cada comunidad tiene expertos verificados y personas en tu mismo nivel de conocimiento. La IA te ayuda a encontrar las comunidades perfectas según tus intereses. ¿Qué área te interesa más?",
	},
	{
		Keywords: []string{"precio", "costo", "gratis", "pagar", "dinero", "cuanto cuesta", "cuánto cuesta"},
		Response: "¡Tengo excelentes noticias! 🎉 Durante toda la fase beta, Investï es completamente GRATUITO para los primeros 1,000 usuarios. Es nuestra forma de agradecerte por ayudarnos a construir la mejor plataforma de educación financiera del mundo. No hay costos ocultos, no hay trucos. Solo educación financiera de calidad, comunidades increíbles y tu mentor IA personal, todo gratis. ¿Te gustaría asegurar tu lugar ahora?",
	},
	{
		Keywords: []string{"cuando", "cuándo", "lanzamiento", "disponible", "fecha"},
		Response: "¡Estamos súper cerca! ⏰ Los beta testers tendrán acceso exclusivo en las próximas 4-6 semanas. Estamos en las etapas finales de desarrollo y testing. Por eso es crucial registrarse ahora para no perderse esta oportunidad única de ser pionero en el futuro de las finanzas. Los primeros usuarios también tendrán beneficios especiales cuando lancemos oficialmente. ¡No te quedes fuera!",
	},
	{
		Keywords: []string{"educacion", "educación", "aprender", "cursos", "enseñar"},
		Response: "¡La educación es nuestra pasión! 📚 En Investï transformamos el aprendizaje financiero en una experiencia divertida y efectiva. Ofrecemos cursos interactivos, desafíos semanales, minijuegos educativos, simuladores de inversión, y un sistema de gamificación con badges y niveles. Todo adaptado a tu ritmo y nivel de conocimiento. Desde conceptos básicos hasta estrategias avanzadas. ¿Te gustaría saber más sobre algún tema específico?",
	},
	{
		Keywords: []string{"seguro", "seguridad", "confiable", "regulado"},
		Response: "¡La seguridad es nuestra prioridad número uno! 🛡️ Investï cumple con los más altos estándares de seguridad y regulación financiera. Todos tus datos están encriptados, nunca compartimos información personal, y trabajamos solo con instituciones financieras reguladas. Además, como mentor IA, nunca te daré recomendaciones de inversión específicas para cumplir con las regulaciones. Mi función es educarte y guiarte para que tomes tus propias decisiones informadas.",
	},
	{
		Keywords: []string{"ayuda", "soporte", "contacto", "problema"},
		Response: "¡Estoy aquí para ayudarte! 💪 Como tu asistente IA, puedo resolver la mayoría de tus dudas al instante. Si necesitas ayuda más específica, nuestro equipo de soporte humano está disponible 24/7 para usuarios beta. También tenemos un centro de ayuda completo, tutoriales en video, y una comunidad súper activa donde otros usuarios pueden ayudarte. ¿En qué específicamente puedo ayudarte ahora?",
	},
}

// QuickPrompts are the suggested first questions shown next to the input.
var QuickPrompts = []string{
	"¿Qué es Investï?",
	"¿Cómo funciona la IA?",
	"Quiero registrarme",
	"¿Es gratis?",
}
