// internal/report/template.go
package report

const reportTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">
  <style>
    :root {
      --primary: #334155;
      --secondary: #64748B;
      --accent: #3B82F6;
      --light: #F1F5F9;
      --background: #FFFFFF;
      --text: #0F172A;
      --border: #E2E8F0;
    }
    body {
      background-color: var(--light);
      color: var(--text);
    }
    .navbar-dark {
      background-color: var(--primary) !important;
    }
    .card {
      border: 1px solid var(--border);
      background-color: var(--background);
    }
    .chart-card {
      background: var(--background);
      border-radius: 16px;
      padding: 1.5rem;
      box-shadow: 0 1px 3px rgba(15, 23, 42, 0.1);
      border: 1px solid var(--border);
    }
    .chart-title {
      font-size: 1.5rem;
      font-weight: 700;
      color: var(--text);
      margin-bottom: 0.25rem;
    }
    .chart-subtitle {
      color: var(--secondary);
      margin-bottom: 1.5rem;
    }
    .chart-canvas {
      position: relative;
      height: 480px;
    }
    .table thead th,
    .table thead td {
      background-color: var(--light);
      color: var(--text);
      border-color: var(--border);
    }
    td.score-name { font-weight: 600; }
    .band-badge {
      display: inline-block;
      padding: 0.2rem 0.6rem;
      border-radius: 999px;
      font-size: 0.8rem;
      font-weight: 600;
      color: #ffffff;
    }
  </style>
</head>
<body>
  <nav class="navbar navbar-dark bg-dark">
    <div class="container-fluid">
      <span class="navbar-brand mb-0 h1">{{ .Title }}</span>
      <span class="text-light">Generated: <span id="generatedAt">-</span></span>
    </div>
  </nav>
  <main class="container-fluid my-4">
    <section>
      <div class="card shadow-sm chart-card">
        <div class="card-body">
          <div class="chart-title">Score Profile</div>
          <div class="chart-subtitle">Mean percentile by domain. Click a bar to drill into its subdomains and scales.</div>
          <div class="chart-canvas">
            <div id="scoreChart" role="img" aria-label="Score profile drilldown chart"></div>
          </div>
          <div id="scoreChartEmpty" class="text-muted small mt-2"></div>
        </div>
      </div>
    </section>

    <section class="mt-4">
      <div class="card shadow-sm">
        <div class="card-header bg-white">
          <h5 class="mb-0">Score Summary</h5>
        </div>
        <div class="card-body">
          <div class="table-responsive">
            <table class="table table-striped table-hover table-bordered table-sm" id="summaryTable">
              <thead class="table-light">
                <tr>
                  <th>Level</th>
                  <th>Name</th>
                  <th>Mean z</th>
                  <th>Mean percentile</th>
                  <th>Band</th>
                </tr>
              </thead>
              <tbody></tbody>
            </table>
          </div>
        </div>
      </div>
    </section>
  </main>

  <script src="https://code.jquery.com/jquery-3.7.1.min.js"></script>
  <script src="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/js/bootstrap.bundle.min.js"></script>
  <script src="https://code.highcharts.com/highcharts.js"></script>
  <script src="https://code.highcharts.com/modules/drilldown.js"></script>
  <script>
    var rootSeries = {{ .RootJSON }};
    var drilldownSeries = {{ .SeriesJSON }};
    var tableRecords = {{ .TableJSON }};
    var bandOrder = {{ .BandsJSON }};
    var chartType = '{{ .ChartType }}';
  </script>
  <script>
    (function($) {
      var bandColors = {
        'Exceptionally High': '#1D4ED8',
        'Above Average': '#3B82F6',
        'High Average': '#60A5FA',
        'Average': '#64748B',
        'Low Average': '#F59E0B',
        'Below Average': '#F97316',
        'Exceptionally Low': '#DC2626'
      };

      function formatNumber(value, decimals) {
        if (value === null || value === undefined || isNaN(value)) {
          return '-';
        }
        return Number(value).toFixed(decimals);
      }

      function bandBadge(band) {
        if (!band) {
          return '-';
        }
        var color = bandColors[band] || '#64748B';
        return '<span class="band-badge" style="background: ' + color + ';">' + band + '</span>';
      }

      function populateTable(records) {
        var $tbody = $('#summaryTable tbody').empty();
        records.forEach(function(record) {
          var indent = new Array((record.depth || 0) + 1).join('&nbsp;&nbsp;&nbsp;&nbsp;');
          var $row = $('<tr></tr>');
          $row.append($('<td></td>').text(record.level || '-'));
          var $name = $('<td class="score-name"></td>');
          $name.html(indent);
          $name.append(document.createTextNode(record.name || '-'));
          if (record.depth > 0) {
            $name.removeClass('score-name');
          }
          $row.append($name);
          $row.append($('<td></td>').text(formatNumber(record.mean_z, 2)));
          $row.append($('<td></td>').text(formatNumber(record.mean_percentile, 0)));
          $row.append($('<td></td>').html(bandBadge(record.band)));
          $tbody.append($row);
        });
      }

      function buildChart() {
        var container = document.getElementById('scoreChart');
        if (!container) {
          return;
        }
        if (!rootSeries || !rootSeries.length) {
          $('#scoreChartEmpty').text('No scored observations available for this report.');
          return;
        }

        function decorate(point) {
          return {
            name: point.name,
            y: point.y,
            drilldown: point.drilldown || null,
            color: bandColors[point.range] || '#3B82F6',
            band: point.range || null,
            meanZ: point.y2
          };
        }

        var points = rootSeries.map(decorate);
        var series = (drilldownSeries || []).map(function(record) {
          return {
            id: record.id,
            type: record.type || chartType,
            data: (record.data || []).map(decorate)
          };
        });

        Highcharts.chart(container, {
          chart: { type: chartType },
          title: { text: null },
          credits: { enabled: false },
          xAxis: { type: 'category' },
          yAxis: {
            min: 0,
            max: 100,
            title: { text: 'Mean percentile' }
          },
          legend: { enabled: false },
          tooltip: {
            formatter: function() {
              var lines = ['<b>' + this.point.name + '</b>'];
              lines.push('Percentile: ' + formatNumber(this.point.y, 0));
              if (this.point.meanZ !== null && this.point.meanZ !== undefined) {
                lines.push('Mean z: ' + formatNumber(this.point.meanZ, 2));
              }
              if (this.point.band) {
                lines.push('Band: ' + this.point.band);
              }
              return lines.join('<br/>');
            }
          },
          plotOptions: {
            series: {
              dataLabels: {
                enabled: true,
                formatter: function() {
                  return formatNumber(this.y, 0);
                }
              }
            }
          },
          series: [{
            name: 'Domains',
            colorByPoint: false,
            data: points
          }],
          drilldown: {
            series: series
          }
        });
      }

      $(function() {
        $('#generatedAt').text(new Date().toLocaleString());
        populateTable(tableRecords || []);
        buildChart();
      });
    })(jQuery);
  </script>
</body>
</html>
`
