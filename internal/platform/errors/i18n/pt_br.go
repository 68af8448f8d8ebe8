package i18n

var ptBRCatalog = &Catalog{
	locale: "pt-BR",
	messages: map[Code]string{
		CodeInvalidSeed: "A semente {{.Value}} não é um número",

		CodeEmptyInput:             "Não é possível sortear de uma coleção vazia",
		CodeCountExceedsPopulation: "Não é possível sortear {{.Count}} itens únicos de {{.Population}}",
		CodeMismatchedLengths:      "Recebidos {{.Values}} valores mas {{.Weights}} pesos",
		CodeInvalidWeight:          "O peso {{.Weight}} na posição {{.Index}} {{if .Overflow}}estoura o total{{else}}deve ser positivo{{end}}",

		CodeUnknownDataSet: "O conjunto de dados {{.Name}} não está definido",
		CodeNotASequence:   "O conjunto de dados {{.Name}} é gerado e não aceita acréscimos",

		CodeExhaustedDomain: "Encontrados apenas {{.Found}} de {{.Count}} valores distintos após {{.Attempts}} tentativas",

		CodeDiceInvalidNotation: "A notação de dados {{.Notation}} não é válida",
		CodeDiceInvalidSpec:     "Os dados devem ter lados e quantidade positivos",

		CodeUnknownGenerator: "O gerador {{.Name}} não existe",
		CodeInvalidOption:    "A opção {{.Option}} é inválida: {{.Reason}}",
	},
}
