package regon

const (
	searchResult = `<root>
  <dane>
    <Regon>000331501</Regon>
    <Nip>5261040828</Nip>
    <StatusNip />
    <Nazwa>GŁÓWNY URZĄD STATYSTYCZNY</Nazwa>
    <Wojewodztwo>MAZOWIECKIE</Wojewodztwo>
    <Powiat>m. st. Warszawa</Powiat>
    <Gmina>Śródmieście</Gmina>
    <Miejscowosc>Warszawa</Miejscowosc>
    <KodPocztowy>00-925</KodPocztowy>
    <Ulica>ul. Test-Krucza</Ulica>
    <NrNieruchomosci>208</NrNieruchomosci>
    <NrLokalu />
    <Typ>P</Typ>
    <SilosID>6</SilosID>
    <DataZakonczeniaDzialalnosci />
    <MiejscowoscPoczty>Warszawa</MiejscowoscPoczty>
  </dane>
</root>`

	notFoundResult = `<root>
  <dane>
    <ErrorCode>4</ErrorCode>
    <ErrorMessagePl>Nie znaleziono podmiotu dla podanych kryteriów wyszukiwania.</ErrorMessagePl>
    <ErrorMessageEn>No data found for the specified search criteria.</ErrorMessageEn>
    <Nip>1111111111</Nip>
  </dane>
</root>`

	failedResult = `<root>
  <dane>
    <ErrorCode>1</ErrorCode>
    <ErrorMessagePl>Wystąpił nieoczekiwany błąd.</ErrorMessagePl>
    <ErrorMessageEn>Unexpected error.</ErrorMessageEn>
  </dane>
</root>`

	legalPersonReport = `<root>
  <dane>
    <praw_regon9>000331501</praw_regon9>
    <praw_nip>5261040828</praw_nip>
    <praw_nazwa>GŁÓWNY URZĄD STATYSTYCZNY</praw_nazwa>
    <praw_dataPowstania>1975-12-15</praw_dataPowstania>
    <praw_adSiedzKodPocztowy>00925</praw_adSiedzKodPocztowy>
  </dane>
</root>`

	pkdReport = `<root>
  <dane>
    <praw_pkdKod>8411Z</praw_pkdKod>
    <praw_pkdNazwa>KIEROWANIE PODSTAWOWYMI RODZAJAMI DZIAŁALNOŚCI PUBLICZNEJ</praw_pkdNazwa>
    <praw_pkdPrzewazajace>1</praw_pkdPrzewazajace>
  </dane>
  <dane>
    <praw_pkdKod>6311Z</praw_pkdKod>
    <praw_pkdNazwa>PRZETWARZANIE DANYCH</praw_pkdNazwa>
    <praw_pkdPrzewazajace>0</praw_pkdPrzewazajace>
  </dane>
</root>`

	pkdNotFoundReport = `<root>
  <dane>
    <ErrorCode>4</ErrorCode>
    <ErrorMessagePl>Nie znaleziono podmiotu dla podanych kryteriów wyszukiwania.</ErrorMessagePl>
  </dane>
</root>`
)
