package server

// Server объединяет HTTP-серверы отдельных сущностей.
type Server struct {
	UnitPriceServer
}

func NewServer(
	unitPriceServer UnitPriceServer,
) Server {
	return Server{
		UnitPriceServer: unitPriceServer,
	}
}
