// Package ranking implementa el motor TOPSIS que ordena especialistas segun
// las preferencias de un cliente.
//
// El flujo es unidireccional: los evaluadores de criterio convierten cada par
// (especialista, perfil) en puntuaciones en [0,1], BuildMatrix arma la matriz
// de decision N×5 y Solve calcula la cercania relativa de cada fila al ideal.
// Nada en este paquete hace I/O ni guarda estado mutable compartido, por lo que
// es seguro llamarlo concurrentemente.
package ranking
