package library

import "github.com/socceo/socceo/internal/models"

// SeedPosts returns the built-in default dataset. It is copied into the
// mutable collection on first run (or when the slot is unreadable), so all
// of it is editable and deletable afterwards. IDs are deterministic.
func SeedPosts() []models.Post {
	return []models.Post{
		{
			ID:          "1",
			Title:       "O Fim da Vantagem Competitiva Sustentável",
			Description: "Por que defender uma única vantagem por décadas deixou de ser uma estratégia viável e o que fazer no lugar.",
			Category:    "Estratégia",
			Tag:         "Estratégia",
			Date:        "12 Mar 2025",
			ReadTime:    "8 min",
			Type:        models.TypeInsight,
			Body: "Durante décadas, a literatura de estratégia tratou a vantagem competitiva " +
				"sustentável como o objetivo final de qualquer empresa. A premissa era simples: " +
				"encontre uma posição defensável, construa barreiras e colha os resultados por anos.\n\n" +
				"Esse mundo acabou. Ciclos de produto mais curtos, capital abundante e concorrentes " +
				"globais transformaram vantagens duradouras em vantagens transitórias. A pergunta " +
				"deixou de ser \"como defender minha posição\" e passou a ser \"com que velocidade " +
				"consigo construir a próxima\".\n\n" +
				"Na prática, isso muda três coisas: o portfólio de apostas substitui o plano único, " +
				"a capacidade de desinvestir vira tão importante quanto a de investir, e a métrica " +
				"central passa a ser o tempo entre a identificação de uma oportunidade e a sua captura.",
		},
		{
			ID:          "2",
			Title:       "É Hoje!",
			Description: "O lançamento da plataforma Socceo e o que muda para quem constrói estratégia todos os dias.",
			Category:    "Mercado",
			Tag:         "Mercado",
			Date:        "01 Fev 2025",
			ReadTime:    "3 min",
			Type:        models.TypeInsight,
			Body: "Depois de meses de construção ao lado dos nossos primeiros usuários, a plataforma " +
				"Socceo está no ar. A biblioteca de conteúdo que você está lendo agora faz parte " +
				"dela: artigos curtos sobre decisões reais e frameworks explicados do jeito que a " +
				"gente gostaria de ter aprendido.\n\n" +
				"Todo o conteúdo é editável pela própria equipe, sem depender de ninguém de fora. " +
				"Se algo envelhecer mal, a gente corrige no mesmo dia.",
		},
		{
			ID:          "3",
			Title:       "Inovação Aberta Sem Romantismo",
			Description: "Parcerias com startups funcionam quando há um problema claro de um lado e velocidade do outro. O resto é teatro.",
			Category:    "Inovação",
			Tag:         "Inovação",
			Date:        "20 Jan 2025",
			ReadTime:    "6 min",
			Type:        models.TypeInsight,
			Body: "Programas de inovação aberta costumam nascer com um pitch bonito e morrer em uma " +
				"prova de conceito que ninguém patrocinou. O padrão dos que funcionam é pouco " +
				"glamoroso: uma área de negócio com uma dor cara, um orçamento próprio e um " +
				"executivo disposto a colocar o resultado na sua meta.\n\n" +
				"Antes de abrir um edital para startups, responda três perguntas: quem paga, quem " +
				"implanta e o que acontece com o contrato se o piloto der certo. Se alguma resposta " +
				"for \"a gente vê depois\", o programa é teatro.",
		},
		{
			ID:          "4",
			Title:       "Análise SWOT",
			Description: "O ponto de partida clássico para diagnóstico estratégico: forças, fraquezas, oportunidades e ameaças.",
			Category:    "Diagnóstico",
			Tag:         "Diagnóstico",
			Date:        "15 Jan 2025",
			ReadTime:    "10 min",
			Image:       "/attachments/swot.png",
			Type:        models.TypeFramework,
			Framework: &models.FrameworkContent{
				WhatIs: "A Análise SWOT organiza o diagnóstico de uma organização em quatro quadrantes: " +
					"forças e fraquezas (fatores internos, sob controle da empresa) e oportunidades e " +
					"ameaças (fatores externos, do ambiente). O valor não está em preencher os quadrantes, " +
					"mas em cruzá-los: que força captura qual oportunidade, que fraqueza expõe a qual ameaça.",
				PracticalCase: models.PracticalCase{
					Title: "Aplicando SWOT em uma rede regional de varejo",
					Advantages: []string{
						"Linguagem comum que qualquer equipe entende em minutos",
						"Força a separação entre o que a empresa controla e o que não controla",
						"Base natural para priorizar iniciativas no cruzamento dos quadrantes",
					},
					Limitations: []string{
						"Vira lista de desejos quando feita sem dados",
						"Fotografia estática: precisa ser refeita a cada mudança relevante de contexto",
						"Não diz nada sobre como competir, apenas sobre onde se está",
					},
					Conclusion: "Use a SWOT como abertura do ciclo de planejamento, nunca como entrega final. " +
						"O resultado útil é a lista priorizada de cruzamentos, com um dono para cada um.",
					RealWorldCase: "Uma rede de farmácias do interior usou o cruzamento \"capilaridade × " +
						"telemedicina\" para lançar pontos de atendimento remoto antes das grandes redes " +
						"chegarem à região.",
				},
				Related: []models.RelatedFramework{
					{Title: "As Cinco Forças de Porter", Description: "Aprofunda o lado externo da SWOT com uma estrutura de concorrência."},
					{Title: "OKR", Description: "Transforma os cruzamentos priorizados em objetivos mensuráveis."},
				},
			},
		},
		{
			ID:          "5",
			Title:       "As Cinco Forças de Porter",
			Description: "Como estruturar a leitura da concorrência além dos rivais diretos.",
			Category:    "Planejamento",
			Tag:         "Planejamento",
			Date:        "08 Jan 2025",
			ReadTime:    "12 min",
			Type:        models.TypeFramework,
			Framework: &models.FrameworkContent{
				WhatIs: "O modelo das Cinco Forças analisa a atratividade de um setor a partir de cinco " +
					"pressões: rivalidade entre concorrentes, poder de barganha de fornecedores, poder de " +
					"barganha de clientes, ameaça de novos entrantes e ameaça de substitutos. Setores onde " +
					"as cinco forças são intensas tendem a destruir margem, independentemente da execução.",
				PracticalCase: models.PracticalCase{
					Title: "Avaliando a entrada em um mercado de assinaturas",
					Advantages: []string{
						"Tira o foco obsessivo dos rivais diretos e ilumina substitutos e entrantes",
						"Explica diferenças estruturais de margem entre setores",
					},
					Limitations: []string{
						"Pressupõe fronteiras de setor estáveis, cada vez mais raras",
						"Pouco útil para decidir o movimento seguinte; é um mapa, não uma rota",
					},
					Conclusion: "Rode as cinco forças antes de comprometer capital em um novo mercado e " +
						"reavalie quando qualquer força mudar de patamar.",
					RealWorldCase: "Uma empresa de software B2B desistiu de um mercado aparentemente " +
						"atraente ao constatar que dois fornecedores de dados concentravam todo o insumo " +
						"crítico do setor.",
				},
				Related: []models.RelatedFramework{
					{Title: "Análise SWOT", Description: "Conecta a leitura do setor ao diagnóstico interno."},
				},
			},
		},
		{
			ID:          "6",
			Title:       "OKR",
			Description: "Objetivos e resultados-chave: o elo entre a estratégia desenhada e o trimestre que começa segunda-feira.",
			Category:    "Execução",
			Tag:         "Execução",
			Date:        "02 Jan 2025",
			ReadTime:    "9 min",
			Type:        models.TypeFramework,
			Framework: &models.FrameworkContent{
				WhatIs: "OKR (Objectives and Key Results) é um método de desdobramento de estratégia em " +
					"ciclos curtos. Cada objetivo é qualitativo e inspirador; cada resultado-chave é uma " +
					"métrica verificável que indica se o objetivo foi atingido. O ciclo típico é " +
					"trimestral, com revisões semanais de progresso.",
				PracticalCase: models.PracticalCase{
					Title: "Primeiro ciclo de OKRs em uma scale-up",
					Advantages: []string{
						"Cria transparência sobre o que cada equipe está de fato perseguindo",
						"Separa metas de aspiração das metas de remuneração, liberando ambição",
					},
					Limitations: []string{
						"Degenera em lista de tarefas quando os resultados-chave viram entregas",
						"Exige cadência de revisão disciplinada; sem ela o quadro apodrece em semanas",
					},
					Conclusion: "Comece com um único nível de OKRs da empresa e no máximo três objetivos. " +
						"Desdobre para equipes apenas no segundo ciclo, depois que a cadência pegou.",
					RealWorldCase: "Uma fintech de 80 pessoas cortou pela metade o tempo de replanejamento " +
						"trimestral ao substituir o orçamento detalhado por três OKRs de empresa revisados " +
						"semanalmente.",
				},
				Related: []models.RelatedFramework{
					{Title: "Análise SWOT", Description: "Fornece o diagnóstico que alimenta a escolha dos objetivos."},
				},
			},
		},
	}
}
