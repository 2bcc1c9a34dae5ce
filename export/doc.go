// Package export serializa as visões do relatório para download: CSV, planilha XLSX,
// imagem PNG da tabela e o gráfico de barras por tipo de licença.
//
// Todas as funções recusam visões vazias com report.ErrEmptyResult; quem chama mostra
// o aviso no lugar do botão de exportação.
package export
